package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (r *fakeRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.reservations, nil
}

func newTestUseCase(repo *fakeRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &stubClock{now: now}
	return uc
}

var testNow = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_NoDate(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Nil(t, resp.Date)
	assert.Equal(t, domain.SlotCatalog(), resp.Slots)
	assert.False(t, resp.Bookable)

	// Без даты репозиторий не опрашивается
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_WithDate(t *testing.T) {
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{EventDate: day, Slot: "09:00 AM - 11:00 AM"},
		{EventDate: day, Slot: "01:00 PM - 03:00 PM"},
	}}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: &day})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		"11:00 AM - 01:00 PM",
		"03:00 PM - 05:00 PM",
		"05:00 PM - 07:00 PM",
		"07:00 PM - 09:00 PM",
	}, resp.Slots)
	assert.True(t, resp.Bookable)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_PastDateNotBookable(t *testing.T) {
	past := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: &past})
	require.NoError(t, err)

	// Доступность считается и для прошедшей даты, но бронировать её нельзя
	assert.Equal(t, domain.SlotCatalog(), resp.Slots)
	assert.False(t, resp.Bookable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, testNow)

	_, err := uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var zero time.Time
	_, err = uc.Execute(context.Background(), &Request{Date: &zero})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), &Request{Date: &day})
	assert.ErrorIs(t, err, ErrInternal)
}
