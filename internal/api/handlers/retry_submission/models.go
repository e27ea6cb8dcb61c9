package retry_submission

import (
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

// StatusResponse HTTP response model состояния после сброса попытки
type StatusResponse struct {
	State string `json:"state"`
}

// FromStatus конвертирует статус сервиса в HTTP response
func FromStatus(status *submissionService.Status) *StatusResponse {
	return &StatusResponse{State: string(status.State)}
}
