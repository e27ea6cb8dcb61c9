package domain

// SubmissionState represents the state of a booking submission attempt.
// Exactly one submission attempt is associated with a draft at a time.
type SubmissionState string

const (
	// StateIdle черновик редактируется, попытка не начата
	StateIdle SubmissionState = "idle"

	// StateValidating выполняется валидация полей перед оплатой
	StateValidating SubmissionState = "validating"

	// StateAwaitingPaymentInit ожидается создание платежной сессии
	StateAwaitingPaymentInit SubmissionState = "awaiting_payment_init"

	// StateAwaitingConfirmation сессия создана, ожидается внешний сигнал
	// подтверждения; параллельно запущен таймер таймаута
	StateAwaitingConfirmation SubmissionState = "awaiting_confirmation"

	// StateSucceeded оплата подтверждена, бронирование завершено
	StateSucceeded SubmissionState = "succeeded"

	// StateFailed попытка завершилась неудачей (см. FailureReason)
	StateFailed SubmissionState = "failed"
)

// IsTerminal returns true if the state ends the current submission attempt
func (s SubmissionState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// IsInFlight returns true if a submission attempt is currently in progress
// and a second submit must be rejected
func (s SubmissionState) IsInFlight() bool {
	return s == StateValidating || s == StateAwaitingPaymentInit || s == StateAwaitingConfirmation
}

// FailureReason classifies a terminal Failed state. All reasons are
// recoverable by explicit user retry; none are fatal to the process.
type FailureReason string

const (
	// FailureValidation поля черновика не прошли валидацию
	FailureValidation FailureReason = "validation"

	// FailurePaymentInit не удалось создать платежную сессию
	FailurePaymentInit FailureReason = "payment_init"

	// FailurePaymentConfirm процессинг сообщил об ошибке подтверждения
	FailurePaymentConfirm FailureReason = "payment_confirm"

	// FailureTimeout сигнал подтверждения не пришел за отведенное время
	FailureTimeout FailureReason = "timeout"

	// FailureCanceled пользователь отказался от оплаты
	FailureCanceled FailureReason = "canceled"
)
