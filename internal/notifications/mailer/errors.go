package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда SMTP транспорт не настроен
	// Отправка уведомлений в этом случае пропускается, бронирование не страдает
	ErrNotConfigured = errors.New("mailer: smtp transport not configured")

	// ErrRenderTemplate возвращается при ошибке рендеринга шаблона письма
	ErrRenderTemplate = errors.New("mailer: failed to render template")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send email")
)
