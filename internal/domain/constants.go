package domain

// Package pricing (single fixed package, amounts in cents)
const (
	PackageName        = "360° Photo Booth - 2 Hours"
	PackageAmountCents = 20000 // $200.00
	PackageCurrency    = "usd"
)

// Default configuration values
const (
	// DefaultConfirmTimeoutSeconds сколько ждать внешнего подтверждения
	// оплаты до перехода в Failed(timeout). Значение эвристическое,
	// настраивается в конфигурации.
	DefaultConfirmTimeoutSeconds = 5

	// DefaultDraftTTLMinutes время жизни неактивного черновика
	DefaultDraftTTLMinutes = 60
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
