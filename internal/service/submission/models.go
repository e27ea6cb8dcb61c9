package submission

import "github.com/corypride/pictureMePerfect360/internal/domain"

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitResult результат попытки отправки бронирования
type SubmitResult struct {
	State domain.SubmissionState

	// CheckoutURL redirect target для оплаты (заполнен при успешном
	// создании платежной сессии)
	CheckoutURL string
	SessionID   string

	// FieldErrors ошибки валидации (состояние при этом возвращается в Idle)
	FieldErrors []FieldError

	// FailureReason и FailureMessage заполнены при переходе в Failed
	FailureReason  domain.FailureReason
	FailureMessage string
}

// Status текущее состояние попытки бронирования
type Status struct {
	State          domain.SubmissionState
	SessionID      string
	CheckoutURL    string
	FailureReason  domain.FailureReason
	FailureMessage string
	FieldErrors    []FieldError
}

// Терминальные исходы для метрик
const (
	outcomeSucceeded            = "succeeded"
	outcomeFailedValidation     = "failed_validation"
	outcomeFailedPaymentInit    = "failed_payment_init"
	outcomeFailedPaymentConfirm = "failed_payment_confirm"
	outcomeFailedTimeout        = "failed_timeout"
	outcomeFailedCanceled       = "failed_canceled"
)
