package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	"github.com/corypride/pictureMePerfect360/pkg/psqlbuilder"
	"github.com/corypride/pictureMePerfect360/pkg/txmanager"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подтвержденное бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности (event_date, slot) возвращается как ErrSlotTaken -
// это последний рубеж защиты от двойного бронирования.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"event_date",
			"slot",
			"customer_name",
			"customer_email",
			"message",
			"stripe_session_id",
			"amount_cents",
		).
		Values(
			res.EventDate,
			string(res.Slot),
			res.CustomerName,
			res.CustomerEmail,
			res.Message,
			res.StripeSessionID,
			res.AmountCents,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// ListByDate получает все бронирования на указанную дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.list(ctx, squirrel.Eq{"event_date": dateOnly(date)})
}

// ListByDateRange получает бронирования за период [from, to] включительно
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	return r.list(ctx, squirrel.And{
		squirrel.GtOrEq{"event_date": dateOnly(from)},
		squirrel.LtOrEq{"event_date": dateOnly(to)},
	})
}

// GetByStripeSessionID получает бронирование по ID платежной сессии
// Используется webhook-обработчиком для идемпотентности
func (r *Repository) GetByStripeSessionID(ctx context.Context, sessionID string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"stripe_session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStripeSessionID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByStripeSessionID - scan: %v", ErrScanRow, err)
	}
	return res, nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(where).
		OrderBy("event_date", "slot").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows: %v", ErrExecQuery, err)
	}

	return reservations, nil
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"event_date",
		"slot",
		"customer_name",
		"customer_email",
		"message",
		"stripe_session_id",
		"amount_cents",
		"created_at",
	).From("reservations")
}

func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var (
		res       domain.Reservation
		slot      string
		createdAt sql.NullTime
	)

	err := scan(
		&res.ID,
		&res.EventDate,
		&slot,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.Message,
		&res.StripeSessionID,
		&res.AmountCents,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.Slot = domain.TimeSlot(slot)
	res.CreatedAt = createdAt.Time
	return &res, nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
