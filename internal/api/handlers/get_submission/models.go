package get_submission

import (
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

// FieldErrorResponse ошибка валидации конкретного поля формы
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatusResponse HTTP response model состояния попытки бронирования
type StatusResponse struct {
	State          string               `json:"state"`
	SessionID      string               `json:"sessionId,omitempty"`
	CheckoutURL    string               `json:"checkoutUrl,omitempty"`
	FailureReason  string               `json:"failureReason,omitempty"`
	FailureMessage string               `json:"failureMessage,omitempty"`
	FieldErrors    []FieldErrorResponse `json:"fieldErrors,omitempty"`
}

// FromStatus конвертирует статус сервиса в HTTP response
func FromStatus(status *submissionService.Status) *StatusResponse {
	resp := &StatusResponse{
		State:          string(status.State),
		SessionID:      status.SessionID,
		CheckoutURL:    status.CheckoutURL,
		FailureReason:  string(status.FailureReason),
		FailureMessage: status.FailureMessage,
	}

	for _, fe := range status.FieldErrors {
		resp.FieldErrors = append(resp.FieldErrors, FieldErrorResponse{
			Field:   fe.Field,
			Message: fe.Message,
		})
	}

	return resp
}
