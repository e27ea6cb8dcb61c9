package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	"github.com/corypride/pictureMePerfect360/internal/notifications/mailer"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

// msgRedirectTimeout текст ошибки при отсутствии подтверждения за таймаут
const msgRedirectTimeout = "Could not redirect to Stripe. Please check your connection and try again."

// msgPaymentInit текст ошибки при неудачном создании платежной сессии
const msgPaymentInit = "Could not create Stripe checkout session."

// humanDateFormat человекочитаемый формат даты для писем
const humanDateFormat = "Monday, January 2, 2006"

// Service управляет попытками бронирования: один coordinator на черновик,
// плюс индекс платежных сессий для маршрутизации webhook сигналов.
//
// Гарантия: не больше одной попытки в полете на черновик; повторный submit
// до терминального состояния - no-op.
type Service struct {
	mu        sync.Mutex
	byDraft   map[string]*coordinator
	bySession map[string]*coordinator

	drafts   DraftStore
	payment  PaymentClient
	notifier Notifier
	metrics  Metrics
	logger   Logger

	confirmTimeout time.Duration
}

// NewService создает новый экземпляр сервиса бронирования
func NewService(
	drafts DraftStore,
	payment PaymentClient,
	notifier Notifier,
	metrics Metrics,
	confirmTimeout time.Duration,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Service{
		byDraft:        make(map[string]*coordinator),
		bySession:      make(map[string]*coordinator),
		drafts:         drafts,
		payment:        payment,
		notifier:       notifier,
		metrics:        metrics,
		logger:         logger,
		confirmTimeout: confirmTimeout,
	}
}

// Submit запускает попытку бронирования для черновика:
// валидация -> создание checkout сессии -> ожидание подтверждения с таймером
//
// Ошибки валидации возвращают состояние в Idle с ошибками по полям; платежный
// клиент при этом не вызывается. Неудачное создание сессии дает Failed
// (payment_init) с возможностью retry.
func (s *Service) Submit(ctx context.Context, draftID string) (*SubmitResult, error) {
	c := s.coordinatorFor(draftID)

	// Единственность попытки: пока предыдущая не терминальна, submit - no-op
	if !c.beginAttempt() {
		s.logger.Warn("Submit: draft=%s submission already in flight", draftID)
		return nil, ErrSubmissionInFlight
	}

	s.logger.Info("Submit: draft=%s validating", draftID)

	view, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		c.abort()
		if errors.Is(err, draftService.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	// Полная валидация полей; до этого момента черновик мог содержать
	// промежуточно невалидные значения
	if fieldErrs := validateDraft(view.Draft); len(fieldErrs) > 0 {
		c.failValidation(fieldErrs)
		s.metrics.IncSubmission(outcomeFailedValidation)
		s.logger.Warn("Submit: draft=%s validation failed (%d field errors)", draftID, len(fieldErrs))
		return &SubmitResult{
			State:       domain.StateIdle,
			FieldErrors: fieldErrs,
		}, nil
	}

	c.enterPaymentInit(view.Draft.Clone())
	s.logger.Info("Submit: draft=%s creating checkout session", draftID)

	session, err := s.payment.CreateCheckoutSession(ctx, s.sessionRequest(view.Draft))
	if err != nil {
		c.fail(domain.FailurePaymentInit, msgPaymentInit)
		s.metrics.IncSubmission(outcomeFailedPaymentInit)
		s.logger.Error("Submit: draft=%s failed to create checkout session: %v", draftID, err)
		return &SubmitResult{
			State:          domain.StateFailed,
			FailureReason:  domain.FailurePaymentInit,
			FailureMessage: msgPaymentInit,
		}, nil
	}

	s.mu.Lock()
	s.bySession[session.ID] = c
	s.mu.Unlock()

	c.enterAwaitingConfirmation(session.ID, session.URL, s.confirmTimeout, func() {
		s.onConfirmTimeout(c, session.ID)
	})

	s.logger.Info("Submit: draft=%s awaiting confirmation, session=%s timeout=%s",
		draftID, session.ID, s.confirmTimeout)

	return &SubmitResult{
		State:       domain.StateAwaitingConfirmation,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

// ConfirmSuccess обрабатывает внешний сигнал успешной оплаты
//
// Переход выполняется не больше одного раза: опоздавший сигнал после
// таймаута или повторная доставка webhook события - no-op. Черновик
// очищается; уведомления отправляются fire-and-forget и на результат
// бронирования не влияют.
func (s *Service) ConfirmSuccess(ctx context.Context, sessionID string) error {
	c := s.bySessionID(sessionID)
	if c == nil {
		return ErrSubmissionNotFound
	}

	snapshot := c.succeed()
	if snapshot == nil {
		s.logger.Warn("ConfirmSuccess: session=%s late or duplicate signal ignored", sessionID)
		return nil
	}

	s.dropSession(sessionID)
	s.metrics.IncSubmission(outcomeSucceeded)
	s.logger.Info("ConfirmSuccess: draft=%s session=%s booking succeeded", c.draftID, sessionID)

	// Черновик выполнил свою задачу
	if err := s.drafts.Delete(ctx, c.draftID); err != nil && !errors.Is(err, draftService.ErrDraftNotFound) {
		s.logger.Warn("ConfirmSuccess: failed to delete draft=%s: %v", c.draftID, err)
	}

	// Отправка уведомлений вне критического пути
	go s.dispatchNotifications(snapshot)

	return nil
}

// ConfirmCancel обрабатывает сигнал отказа пользователя от оплаты
func (s *Service) ConfirmCancel(ctx context.Context, sessionID string) error {
	c := s.bySessionID(sessionID)
	if c == nil {
		return ErrSubmissionNotFound
	}

	if !c.fail(domain.FailureCanceled, "Payment was canceled.") {
		s.logger.Warn("ConfirmCancel: session=%s late or duplicate signal ignored", sessionID)
		return nil
	}

	s.dropSession(sessionID)
	s.metrics.IncSubmission(outcomeFailedCanceled)
	s.logger.Info("ConfirmCancel: draft=%s session=%s payment canceled", c.draftID, sessionID)
	return nil
}

// ConfirmFailure обрабатывает сигнал ошибки подтверждения оплаты
func (s *Service) ConfirmFailure(ctx context.Context, sessionID string, message string) error {
	c := s.bySessionID(sessionID)
	if c == nil {
		return ErrSubmissionNotFound
	}

	if message == "" {
		message = "Payment confirmation failed."
	}

	if !c.fail(domain.FailurePaymentConfirm, message) {
		s.logger.Warn("ConfirmFailure: session=%s late or duplicate signal ignored", sessionID)
		return nil
	}

	s.dropSession(sessionID)
	s.metrics.IncSubmission(outcomeFailedPaymentConfirm)
	s.logger.Info("ConfirmFailure: draft=%s session=%s: %s", c.draftID, sessionID, message)
	return nil
}

// Retry переводит Failed обратно в Idle по явному действию пользователя
// Черновик сохраняется: данные формы заново вводить не нужно
func (s *Service) Retry(ctx context.Context, draftID string) (*Status, error) {
	s.mu.Lock()
	c, ok := s.byDraft[draftID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrSubmissionNotFound
	}

	if !c.retry() {
		return nil, ErrNotRetryable
	}

	s.logger.Info("Retry: draft=%s back to idle", draftID)
	return c.status(), nil
}

// Status возвращает состояние попытки бронирования для черновика
// Для черновика без попыток возвращается Idle
func (s *Service) Status(ctx context.Context, draftID string) (*Status, error) {
	s.mu.Lock()
	c, ok := s.byDraft[draftID]
	s.mu.Unlock()

	if !ok {
		return &Status{State: domain.StateIdle}, nil
	}
	return c.status(), nil
}

// DraftIDBySession возвращает ID черновика для платежной сессии
// Используется webhook-обработчиком для формирования бронирования
func (s *Service) DraftIDBySession(sessionID string) (string, bool) {
	c := s.bySessionID(sessionID)
	if c == nil {
		return "", false
	}
	return c.draftID, true
}

// SnapshotBySession возвращает снапшот черновика для платежной сессии
func (s *Service) SnapshotBySession(sessionID string) (*domain.BookingDraft, bool) {
	c := s.bySessionID(sessionID)
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		return nil, false
	}
	return c.snapshot.Clone(), true
}

// onConfirmTimeout переход в Failed(timeout), если подтверждение не пришло
func (s *Service) onConfirmTimeout(c *coordinator, sessionID string) {
	if !c.failOnTimeout(msgRedirectTimeout) {
		return
	}

	s.dropSession(sessionID)
	s.metrics.IncSubmission(outcomeFailedTimeout)
	s.logger.Warn("Submit: draft=%s session=%s confirmation timed out after %s",
		c.draftID, sessionID, s.confirmTimeout)
}

// dispatchNotifications отправляет письма клиенту и администратору
// Ошибки логируются и никогда не отменяют успешное бронирование
func (s *Service) dispatchNotifications(snapshot *domain.BookingDraft) {
	details := bookingDetails(snapshot)

	if err := s.notifier.NotifyCustomer(details); err != nil {
		s.metrics.IncNotification("customer", "error")
		s.logger.Error("Notifications: failed to notify customer %s: %v", details.Email, err)
	} else {
		s.metrics.IncNotification("customer", "sent")
	}

	if err := s.notifier.NotifyAdmin(details); err != nil {
		s.metrics.IncNotification("admin", "error")
		s.logger.Error("Notifications: failed to notify admin: %v", err)
	} else {
		s.metrics.IncNotification("admin", "sent")
	}
}

// sessionRequest формирует запрос на создание платежной сессии
// Дата сериализуется в абсолютный timestamp (RFC3339), как и на сайте
func (s *Service) sessionRequest(d *domain.BookingDraft) stripepay.SessionRequest {
	metadata := map[string]string{
		"name":      d.Name,
		"email":     d.Email,
		"eventDate": d.EventDate.UTC().Format(time.RFC3339),
		"eventTime": string(*d.EventTime),
	}
	if d.Message != "" {
		metadata["message"] = d.Message
	}

	return stripepay.SessionRequest{
		AmountCents: domain.PackageAmountCents,
		Currency:    domain.PackageCurrency,
		ProductName: domain.PackageName,
		Description: fmt.Sprintf("Booking for %s on %s", d.Name, d.EventDate.Format(domain.DateFormat)),
		Metadata:    metadata,
	}
}

func (s *Service) coordinatorFor(draftID string) *coordinator {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byDraft[draftID]
	if !ok {
		c = newCoordinator(draftID)
		s.byDraft[draftID] = c
	}
	return c
}

func (s *Service) bySessionID(sessionID string) *coordinator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bySession[sessionID]
}

func (s *Service) dropSession(sessionID string) {
	s.mu.Lock()
	delete(s.bySession, sessionID)
	s.mu.Unlock()
}

// bookingDetails формирует данные для писем из снапшота черновика
func bookingDetails(d *domain.BookingDraft) mailer.BookingDetails {
	details := mailer.BookingDetails{
		Name:        d.Name,
		Email:       d.Email,
		Message:     d.Message,
		PackageName: domain.PackageName,
		TotalPrice:  fmt.Sprintf("$%.2f", float64(domain.PackageAmountCents)/100),
	}
	if d.EventDate != nil {
		details.EventDate = d.EventDate.Format(humanDateFormat)
	}
	if d.EventTime != nil {
		details.EventTime = string(*d.EventTime)
	}
	return details
}
