package get_reservations

import (
	"context"
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

type ReservationRepository interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
