package get_submission

import (
	"context"

	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

type SubmissionService interface {
	Status(ctx context.Context, draftID string) (*submissionService.Status, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
