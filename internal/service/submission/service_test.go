package submission

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	"github.com/corypride/pictureMePerfect360/internal/notifications/mailer"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
	"github.com/corypride/pictureMePerfect360/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeDrafts хранилище черновиков для тестов
type fakeDrafts struct {
	mu      sync.Mutex
	drafts  map[string]*domain.BookingDraft
	deleted []string
}

func newFakeDrafts(drafts ...*domain.BookingDraft) *fakeDrafts {
	f := &fakeDrafts{drafts: make(map[string]*domain.BookingDraft)}
	for _, d := range drafts {
		f.drafts[d.ID] = d
	}
	return f
}

func (f *fakeDrafts) Get(ctx context.Context, id string) (*draftService.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.drafts[id]
	if !ok {
		return nil, draftService.ErrDraftNotFound
	}
	return &draftService.View{Draft: d.Clone()}, nil
}

func (f *fakeDrafts) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.drafts[id]; !ok {
		return draftService.ErrDraftNotFound
	}
	delete(f.drafts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDrafts) has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.drafts[id]
	return ok
}

// fakePayment платежный клиент для тестов
type fakePayment struct {
	mu      sync.Mutex
	calls   int
	lastReq stripepay.SessionRequest
	err     error
	session stripepay.CheckoutSession
}

func (f *fakePayment) CreateCheckoutSession(ctx context.Context, req stripepay.SessionRequest) (*stripepay.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	session := f.session
	return &session, nil
}

func (f *fakePayment) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeNotifier фиксирует отправленные уведомления
type fakeNotifier struct {
	customer chan mailer.BookingDetails
	admin    chan mailer.BookingDetails
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		customer: make(chan mailer.BookingDetails, 1),
		admin:    make(chan mailer.BookingDetails, 1),
	}
}

func (f *fakeNotifier) NotifyCustomer(details mailer.BookingDetails) error {
	f.customer <- details
	return nil
}

func (f *fakeNotifier) NotifyAdmin(details mailer.BookingDetails) error {
	f.admin <- details
	return nil
}

func validDraft(id string) *domain.BookingDraft {
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
	return &domain.BookingDraft{
		ID:        id,
		Name:      "Jordan Smith",
		Email:     "jordan@example.com",
		EventDate: &day,
		EventTime: ptr.Ptr(domain.TimeSlot("11:00 AM - 01:00 PM")),
		Message:   "backyard party",
	}
}

type fixture struct {
	service  *Service
	drafts   *fakeDrafts
	payment  *fakePayment
	notifier *fakeNotifier
}

func newFixture(timeout time.Duration, drafts ...*domain.BookingDraft) *fixture {
	store := newFakeDrafts(drafts...)
	payment := &fakePayment{session: stripepay.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/pay/cs_test_123",
	}}
	notifier := newFakeNotifier()

	svc := NewService(store, payment, notifier, nil, timeout, nopLogger{})
	return &fixture{service: svc, drafts: store, payment: payment, notifier: notifier}
}

func TestSubmit_ValidationFailure(t *testing.T) {
	draft := validDraft("d1")
	draft.EventTime = nil
	fx := newFixture(time.Second, draft)

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, domain.StateIdle, result.State)
	require.Len(t, result.FieldErrors, 1)
	assert.Equal(t, "eventTime", result.FieldErrors[0].Field)
	assert.Equal(t, "An event time is required.", result.FieldErrors[0].Message)

	// Платежный клиент не вызывался
	assert.Equal(t, 0, fx.payment.callCount())

	// Состояние снова Idle, ошибки доступны через Status
	status, err := fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, status.State)
	assert.Len(t, status.FieldErrors, 1)
}

func TestSubmit_MultipleFieldErrors(t *testing.T) {
	draft := &domain.BookingDraft{ID: "d1", Name: "J", Email: "nope"}
	fx := newFixture(time.Second, draft)

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	fields := make([]string, len(result.FieldErrors))
	for i, fe := range result.FieldErrors {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"name", "email", "eventDate", "eventTime"}, fields)
}

func TestSubmit_Success(t *testing.T) {
	fx := newFixture(time.Second, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, domain.StateAwaitingConfirmation, result.State)
	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", result.CheckoutURL)
	assert.Equal(t, 1, fx.payment.callCount())

	// Метаданные сессии: дата сериализуется как абсолютный timestamp
	req := fx.payment.lastReq
	assert.Equal(t, int64(domain.PackageAmountCents), req.AmountCents)
	assert.Equal(t, domain.PackageName, req.ProductName)
	assert.Equal(t, "2024-09-10T00:00:00Z", req.Metadata["eventDate"])
	assert.Equal(t, "11:00 AM - 01:00 PM", req.Metadata["eventTime"])
	assert.Equal(t, "Jordan Smith", req.Metadata["name"])
	assert.Equal(t, "backyard party", req.Metadata["message"])
}

func TestSubmit_DraftNotFound(t *testing.T) {
	fx := newFixture(time.Second)

	_, err := fx.service.Submit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// Попытка не застревает в Validating: следующий submit возможен
	status, err := fx.service.Status(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, status.State)
}

func TestSubmit_InFlightNoOp(t *testing.T) {
	fx := newFixture(time.Minute, validDraft("d1"))

	_, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	_, err = fx.service.Submit(context.Background(), "d1")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, 1, fx.payment.callCount())
}

func TestSubmit_PaymentInitFailure(t *testing.T) {
	fx := newFixture(time.Second, validDraft("d1"))
	fx.payment.err = errors.New("stripe unavailable")

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, domain.StateFailed, result.State)
	assert.Equal(t, domain.FailurePaymentInit, result.FailureReason)
	assert.NotEmpty(t, result.FailureMessage)

	// Черновик сохраняется для retry
	assert.True(t, fx.drafts.has("d1"))

	// Retry возвращает в Idle, повторный submit проходит
	fx.payment.err = nil
	status, err := fx.service.Retry(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, status.State)

	result, err = fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingConfirmation, result.State)
}

func TestConfirmSuccess(t *testing.T) {
	fx := newFixture(time.Minute, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	require.NoError(t, fx.service.ConfirmSuccess(context.Background(), result.SessionID))

	status, err := fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSucceeded, status.State)

	// Черновик очищен
	assert.False(t, fx.drafts.has("d1"))

	// Уведомления отправлены (fire-and-forget, ждем горутину)
	select {
	case details := <-fx.notifier.customer:
		assert.Equal(t, "jordan@example.com", details.Email)
		assert.Equal(t, "Jordan Smith", details.Name)
		assert.Equal(t, "11:00 AM - 01:00 PM", details.EventTime)
	case <-time.After(time.Second):
		t.Fatal("customer notification not dispatched")
	}
	select {
	case <-fx.notifier.admin:
	case <-time.After(time.Second):
		t.Fatal("admin notification not dispatched")
	}

	// Повторная доставка сигнала - no-op
	err = fx.service.ConfirmSuccess(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestConfirmCancel(t *testing.T) {
	fx := newFixture(time.Minute, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	require.NoError(t, fx.service.ConfirmCancel(context.Background(), result.SessionID))

	status, err := fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateFailed, status.State)
	assert.Equal(t, domain.FailureCanceled, status.FailureReason)

	// Черновик сохраняется: пользователь может попробовать снова
	assert.True(t, fx.drafts.has("d1"))
}

func TestConfirmTimeout(t *testing.T) {
	fx := newFixture(30*time.Millisecond, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		status, err := fx.service.Status(context.Background(), "d1")
		return err == nil && status.State == domain.StateFailed
	}, time.Second, 5*time.Millisecond)

	status, err := fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.FailureTimeout, status.FailureReason)
	assert.Equal(t, "Could not redirect to Stripe. Please check your connection and try again.", status.FailureMessage)

	// Опоздавший сигнал успеха после таймаута - no-op
	err = fx.service.ConfirmSuccess(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)

	status, err = fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateFailed, status.State)
	assert.True(t, fx.drafts.has("d1"))

	select {
	case <-fx.notifier.customer:
		t.Fatal("notification must not be sent after timeout")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConfirmBeforeTimeout_TimerStopped(t *testing.T) {
	fx := newFixture(50*time.Millisecond, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	require.NoError(t, fx.service.ConfirmSuccess(context.Background(), result.SessionID))
	<-fx.notifier.customer
	<-fx.notifier.admin

	// Таймер не должен перетереть терминальное состояние
	time.Sleep(100 * time.Millisecond)

	status, err := fx.service.Status(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateSucceeded, status.State)
}

func TestRetry_OnlyFromFailed(t *testing.T) {
	fx := newFixture(time.Minute, validDraft("d1"))

	t.Run("no submission", func(t *testing.T) {
		_, err := fx.service.Retry(context.Background(), "d1")
		assert.ErrorIs(t, err, ErrSubmissionNotFound)
	})

	t.Run("in flight", func(t *testing.T) {
		_, err := fx.service.Submit(context.Background(), "d1")
		require.NoError(t, err)

		_, err = fx.service.Retry(context.Background(), "d1")
		assert.ErrorIs(t, err, ErrNotRetryable)
	})

	t.Run("succeeded", func(t *testing.T) {
		status, err := fx.service.Status(context.Background(), "d1")
		require.NoError(t, err)
		require.NoError(t, fx.service.ConfirmSuccess(context.Background(), status.SessionID))
		<-fx.notifier.customer
		<-fx.notifier.admin

		_, err = fx.service.Retry(context.Background(), "d1")
		assert.ErrorIs(t, err, ErrNotRetryable)
	})
}

func TestStatus_UnknownDraftIsIdle(t *testing.T) {
	fx := newFixture(time.Second)

	status, err := fx.service.Status(context.Background(), "never-submitted")
	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, status.State)
}

func TestSnapshotBySession(t *testing.T) {
	fx := newFixture(time.Minute, validDraft("d1"))

	result, err := fx.service.Submit(context.Background(), "d1")
	require.NoError(t, err)

	snapshot, ok := fx.service.SnapshotBySession(result.SessionID)
	require.True(t, ok)
	assert.Equal(t, "d1", snapshot.ID)
	assert.Equal(t, "Jordan Smith", snapshot.Name)

	draftID, ok := fx.service.DraftIDBySession(result.SessionID)
	require.True(t, ok)
	assert.Equal(t, "d1", draftID)

	_, ok = fx.service.SnapshotBySession("cs_unknown")
	assert.False(t, ok)
}
