package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	reservationRepo "github.com/corypride/pictureMePerfect360/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет callback без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeRepo struct {
	existing     *domain.Reservation
	reservations []*domain.Reservation
	createErr    error
	created      []*domain.Reservation
}

func (r *fakeRepo) GetByStripeSessionID(ctx context.Context, sessionID string) (*domain.Reservation, error) {
	if r.existing != nil && r.existing.StripeSessionID == sessionID {
		return r.existing, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (r *fakeRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.reservations, nil
}

func (r *fakeRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	res.ID = int64(len(r.created) + 1)
	res.CreatedAt = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)
	r.created = append(r.created, res)
	return res, nil
}

func validRequest() *Request {
	return &Request{
		EventDate:       time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC),
		Slot:            "11:00 AM - 01:00 PM",
		CustomerName:    "Jordan Smith",
		CustomerEmail:   "jordan@example.com",
		StripeSessionID: "cs_test_123",
		AmountCents:     20000,
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeRepo{}
	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.False(t, resp.AlreadyExisted)
	assert.Equal(t, domain.TimeSlot("11:00 AM - 01:00 PM"), resp.Slot)

	// Проверка и вставка выполняются внутри сериализуемой транзакции
	assert.Equal(t, 1, txMgr.calls)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "cs_test_123", repo.created[0].StripeSessionID)
}

func TestExecute_IdempotentOnDuplicateDelivery(t *testing.T) {
	existing := &domain.Reservation{
		ID:              7,
		EventDate:       time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC),
		Slot:            "11:00 AM - 01:00 PM",
		StripeSessionID: "cs_test_123",
	}
	repo := &fakeRepo{existing: existing}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.AlreadyExisted)
	assert.Equal(t, int64(7), resp.ID)
	assert.Empty(t, repo.created)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)

	t.Run("availability check fails", func(t *testing.T) {
		repo := &fakeRepo{reservations: []*domain.Reservation{
			{EventDate: day, Slot: "11:00 AM - 01:00 PM", StripeSessionID: "cs_other"},
		}}
		uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, repo.created)
	})

	t.Run("unique constraint race maps to same error", func(t *testing.T) {
		repo := &fakeRepo{createErr: reservationRepo.ErrSlotTaken}
		uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeTxManager{}, nopLogger{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero date", func(r *Request) { r.EventDate = time.Time{} }},
		{"unknown slot", func(r *Request) { r.Slot = "10:00 AM - 12:00 PM" }},
		{"missing name", func(r *Request) { r.CustomerName = "" }},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }},
		{"missing session id", func(r *Request) { r.StripeSessionID = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
