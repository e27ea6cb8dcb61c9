package submission

import (
	"context"

	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	"github.com/corypride/pictureMePerfect360/internal/notifications/mailer"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

// PaymentClient интерфейс платежного клиента
type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, req stripepay.SessionRequest) (*stripepay.CheckoutSession, error)
}

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Get(ctx context.Context, id string) (*draftService.View, error)
	Delete(ctx context.Context, id string) error
}

// Notifier интерфейс отправки уведомлений
// Обе отправки best-effort: ошибки логируются и никогда не влияют на
// результат бронирования
type Notifier interface {
	NotifyCustomer(details mailer.BookingDetails) error
	NotifyAdmin(details mailer.BookingDetails) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncSubmission(outcome string)
	IncNotification(channel, status string)
}

// NopMetrics заглушка метрик, когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) IncSubmission(outcome string)           {}
func (NopMetrics) IncNotification(channel, status string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
