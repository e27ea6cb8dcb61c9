package submission

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("submission: draft not found")

	// ErrSubmissionInFlight возвращается при повторном submit, пока попытка
	// не достигла терминального состояния. Повторная отправка - no-op.
	ErrSubmissionInFlight = errors.New("submission: submission already in flight")

	// ErrSubmissionNotFound возвращается, когда для сессии или черновика
	// нет попытки бронирования
	ErrSubmissionNotFound = errors.New("submission: submission not found")

	// ErrNotRetryable возвращается при попытке retry не из состояния Failed
	ErrNotRetryable = errors.New("submission: retry is only allowed from failed state")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("submission: internal error")
)
