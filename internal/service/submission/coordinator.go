package submission

import (
	"sync"
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// coordinator состояние одной попытки бронирования для черновика
//
// Все переходы выполняются под mu: гонка таймера таймаута и опоздавшего
// webhook сигнала не может дать два терминальных перехода.
type coordinator struct {
	mu sync.Mutex

	draftID string
	state   domain.SubmissionState

	sessionID   string
	checkoutURL string

	// snapshot копия черновика на момент создания платежной сессии
	// Используется для уведомлений после подтверждения оплаты
	snapshot *domain.BookingDraft

	fieldErrors    []FieldError
	failureReason  domain.FailureReason
	failureMessage string

	// confirmTimer таймер ожидания подтверждения; останавливается на любом
	// терминальном переходе
	confirmTimer *time.Timer
}

func newCoordinator(draftID string) *coordinator {
	return &coordinator{
		draftID: draftID,
		state:   domain.StateIdle,
	}
}

// beginAttempt переводит Idle/терминальное состояние в Validating
// Возвращает false, если попытка уже в полете
func (c *coordinator) beginAttempt() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsInFlight() {
		return false
	}

	c.state = domain.StateValidating
	c.sessionID = ""
	c.checkoutURL = ""
	c.fieldErrors = nil
	c.failureReason = ""
	c.failureMessage = ""
	return true
}

// abort возвращает незапущенную попытку в Idle (черновик пропал до оплаты)
func (c *coordinator) abort() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.StateIdle
}

// failValidation возвращает состояние в Idle с ошибками по полям
// Ошибки валидации не делают попытку терминальной: пользователь правит
// форму и отправляет снова
func (c *coordinator) failValidation(errs []FieldError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.StateIdle
	c.fieldErrors = errs
}

// enterPaymentInit переходит Validating -> AwaitingPaymentInit
func (c *coordinator) enterPaymentInit(snapshot *domain.BookingDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.StateAwaitingPaymentInit
	c.snapshot = snapshot
}

// enterAwaitingConfirmation фиксирует созданную сессию и запускает таймер
// ожидания подтверждения
func (c *coordinator) enterAwaitingConfirmation(sessionID, checkoutURL string, timeout time.Duration, onTimeout func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.StateAwaitingConfirmation
	c.sessionID = sessionID
	c.checkoutURL = checkoutURL
	c.confirmTimer = time.AfterFunc(timeout, onTimeout)
}

// fail переводит попытку в терминальное Failed
// Возвращает false, если переход невозможен (состояние уже терминальное
// или попытки нет)
func (c *coordinator) fail(reason domain.FailureReason, message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsInFlight() {
		return false
	}

	c.stopTimerLocked()
	c.state = domain.StateFailed
	c.failureReason = reason
	c.failureMessage = message
	return true
}

// failOnTimeout переводит AwaitingConfirmation в Failed(timeout)
// Вызывается только из таймера; опоздавший сигнал после таймаута - no-op
func (c *coordinator) failOnTimeout(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateAwaitingConfirmation {
		return false
	}

	c.state = domain.StateFailed
	c.failureReason = domain.FailureTimeout
	c.failureMessage = message
	c.confirmTimer = nil
	return true
}

// succeed переводит AwaitingConfirmation в Succeeded
// Возвращает снапшот черновика для уведомлений или nil, если переход
// невозможен (сигнал опоздал)
func (c *coordinator) succeed() *domain.BookingDraft {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateAwaitingConfirmation {
		return nil
	}

	c.stopTimerLocked()
	c.state = domain.StateSucceeded
	return c.snapshot
}

// retry переводит Failed обратно в Idle, сохраняя черновик
func (c *coordinator) retry() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateFailed {
		return false
	}

	c.state = domain.StateIdle
	c.sessionID = ""
	c.checkoutURL = ""
	c.failureReason = ""
	c.failureMessage = ""
	return true
}

// status возвращает текущее состояние попытки
func (c *coordinator) status() *Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Status{
		State:          c.state,
		SessionID:      c.sessionID,
		CheckoutURL:    c.checkoutURL,
		FailureReason:  c.failureReason,
		FailureMessage: c.failureMessage,
		FieldErrors:    c.fieldErrors,
	}
}

// stopTimerLocked останавливает таймер подтверждения; вызывать под mu
func (c *coordinator) stopTimerLocked() {
	if c.confirmTimer != nil {
		c.confirmTimer.Stop()
		c.confirmTimer = nil
	}
}
