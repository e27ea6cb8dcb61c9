package stripe_webhook

import (
	"context"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	createReservation "github.com/corypride/pictureMePerfect360/internal/usecase/create_reservation"
)

type WebhookParser interface {
	ParseWebhookEvent(payload []byte, signature string) (*stripepay.ConfirmationEvent, error)
}

type SubmissionService interface {
	SnapshotBySession(sessionID string) (*domain.BookingDraft, bool)
	ConfirmSuccess(ctx context.Context, sessionID string) error
	ConfirmCancel(ctx context.Context, sessionID string) error
	ConfirmFailure(ctx context.Context, sessionID string, message string) error
}

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
