package update_draft

import (
	"context"

	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

type DraftService interface {
	Update(ctx context.Context, id string, req draftService.UpdateRequest) (*draftService.View, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
