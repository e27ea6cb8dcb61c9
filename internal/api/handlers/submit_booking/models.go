package submit_booking

import (
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

// FieldErrorResponse ошибка валидации конкретного поля формы
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitResponse HTTP response model результата отправки
type SubmitResponse struct {
	State          string               `json:"state"`
	CheckoutURL    string               `json:"checkoutUrl,omitempty"`
	SessionID      string               `json:"sessionId,omitempty"`
	FieldErrors    []FieldErrorResponse `json:"fieldErrors,omitempty"`
	FailureReason  string               `json:"failureReason,omitempty"`
	FailureMessage string               `json:"failureMessage,omitempty"`
}

// FromSubmitResult конвертирует результат сервиса в HTTP response
func FromSubmitResult(result *submissionService.SubmitResult) *SubmitResponse {
	resp := &SubmitResponse{
		State:          string(result.State),
		CheckoutURL:    result.CheckoutURL,
		SessionID:      result.SessionID,
		FailureReason:  string(result.FailureReason),
		FailureMessage: result.FailureMessage,
	}

	for _, fe := range result.FieldErrors {
		resp.FieldErrors = append(resp.FieldErrors, FieldErrorResponse{
			Field:   fe.Field,
			Message: fe.Message,
		})
	}

	return resp
}
