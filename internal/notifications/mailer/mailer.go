package mailer

import (
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет email-уведомления о бронированиях
// Отправка best-effort: ошибки логируются вызывающей стороной и не влияют
// на результат бронирования
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	siteName   string
	log        Logger
}

// Config настройки SMTP транспорта
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
	SiteName   string
}

// New создает новый экземпляр мейлера
// Если SMTP хост не задан, возвращается мейлер без транспорта: все отправки
// завершаются ErrNotConfigured (как и в исходном сайте, где письма
// отключены без SMTP переменных окружения)
func New(cfg Config, log Logger) *Mailer {
	m := &Mailer{
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		siteName:   cfg.SiteName,
		log:        log,
	}

	if cfg.Host != "" && cfg.Username != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	} else {
		log.Warn("Mailer: smtp transport not configured, notifications disabled")
	}

	return m
}

// NotifyCustomer отправляет клиенту письмо с подтверждением бронирования
func (m *Mailer) NotifyCustomer(details BookingDetails) error {
	subject := fmt.Sprintf("Booking Confirmation - %s", m.siteName)
	return m.send(details.Email, subject, customerHTMLTmpl, customerTextTmpl, details)
}

// NotifyAdmin отправляет администратору уведомление о новом бронировании
func (m *Mailer) NotifyAdmin(details BookingDetails) error {
	subject := fmt.Sprintf("New Booking Request - %s", details.Name)
	return m.send(m.adminEmail, subject, adminHTMLTmpl, adminTextTmpl, details)
}

func (m *Mailer) send(to, subject string, htmlTmpl, textTmpl *template.Template, details BookingDetails) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}

	data := templateData{BookingDetails: details, SiteName: m.siteName}

	html, err := render(htmlTmpl, data)
	if err != nil {
		return err
	}
	text, err := render(textTmpl, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, m.siteName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, to, err)
	}

	m.log.Info("Mailer: email sent to=%s subject=%q", to, subject)
	return nil
}
