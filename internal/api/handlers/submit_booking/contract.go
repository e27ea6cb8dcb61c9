package submit_booking

import (
	"context"

	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

type SubmissionService interface {
	Submit(ctx context.Context, draftID string) (*submissionService.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
