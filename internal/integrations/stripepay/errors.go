package stripepay

import "errors"

var (
	// ErrSessionCreate возвращается, когда не удалось создать checkout сессию
	ErrSessionCreate = errors.New("stripepay client: failed to create checkout session")

	// ErrPaymentIntentCreate возвращается, когда не удалось создать payment intent
	ErrPaymentIntentCreate = errors.New("stripepay client: failed to create payment intent")

	// ErrNoSessionURL возвращается, когда Stripe вернул сессию без redirect URL
	ErrNoSessionURL = errors.New("stripepay client: session has no redirect url")

	// ErrInvalidWebhook возвращается при некорректной подписи или теле webhook события
	ErrInvalidWebhook = errors.New("stripepay client: invalid webhook event")
)
