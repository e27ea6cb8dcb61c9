package stripepay

// SessionRequest запрос на создание платежной сессии
type SessionRequest struct {
	AmountCents int64
	Currency    string
	ProductName string
	Description string

	// Metadata данные бронирования, прикрепляемые к платежной сессии
	// (имя, email, дата и слот события)
	Metadata map[string]string
}

// CheckoutSession созданная checkout сессия
// URL - redirect target, на который отправляется пользователь для оплаты
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentIntent созданный payment intent
// ClientSecret - client-side confirmation handle для embedded оплаты
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// ConfirmationEvent распознанное webhook событие подтверждения
type ConfirmationEvent struct {
	Type      ConfirmationType
	SessionID string
}

// ConfirmationType тип сигнала подтверждения от Stripe
type ConfirmationType string

const (
	// ConfirmationCompleted оплата завершена успешно
	ConfirmationCompleted ConfirmationType = "completed"

	// ConfirmationExpired пользователь не завершил оплату, сессия истекла
	ConfirmationExpired ConfirmationType = "expired"

	// ConfirmationFailed процессинг сообщил об ошибке оплаты
	ConfirmationFailed ConfirmationType = "failed"

	// ConfirmationIgnored событие, не влияющее на бронирование
	ConfirmationIgnored ConfirmationType = "ignored"
)
