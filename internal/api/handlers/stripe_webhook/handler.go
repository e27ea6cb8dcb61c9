package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	"github.com/corypride/pictureMePerfect360/internal/domain"
	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
	createReservation "github.com/corypride/pictureMePerfect360/internal/usecase/create_reservation"
	"github.com/corypride/pictureMePerfect360/pkg/ptr"
)

// maxBodyBytes лимит на размер тела webhook запроса (рекомендация Stripe)
const maxBodyBytes = int64(65536)

const (
	msgInvalidPayload = "invalid webhook payload"
)

type Handler struct {
	parser      WebhookParser
	submissions SubmissionService
	reserve     CreateReservationUseCase
	logger      Logger
}

func NewHandler(
	parser WebhookParser,
	submissions SubmissionService,
	reserve CreateReservationUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		parser:      parser,
		submissions: submissions,
		reserve:     reserve,
		logger:      logger,
	}
}

// Handle POST /webhooks/stripe
//
// Обработка идемпотентна: повторная доставка события дает no-op (бронирование
// уже существует, терминальный переход уже выполнен). Сигнал для неизвестной
// сессии логируется и подтверждается (200), чтобы Stripe не ретраил вечно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	event, err := h.parser.ParseWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	switch event.Type {
	case stripepay.ConfirmationCompleted:
		h.handleCompleted(w, r, event.SessionID)

	case stripepay.ConfirmationExpired:
		if err := h.submissions.ConfirmCancel(r.Context(), event.SessionID); err != nil {
			h.logUnknownSession("expired", event.SessionID, err)
		}
		handlers.RespondJSON(w, http.StatusOK, nil)

	case stripepay.ConfirmationFailed:
		if err := h.submissions.ConfirmFailure(r.Context(), event.SessionID, ""); err != nil {
			h.logUnknownSession("failed", event.SessionID, err)
		}
		handlers.RespondJSON(w, http.StatusOK, nil)

	default:
		// Событие не влияет на бронирование
		handlers.RespondJSON(w, http.StatusOK, nil)
	}
}

// handleCompleted сохраняет бронирование и завершает попытку
// Порядок важен: сначала запись в БД, потом терминальный переход - падение
// между ними безопасно, Stripe ретраит, create_reservation идемпотентен
func (h *Handler) handleCompleted(w http.ResponseWriter, r *http.Request, sessionID string) {
	snapshot, ok := h.submissions.SnapshotBySession(sessionID)
	if !ok {
		h.logger.Warn("POST /webhooks/stripe - Completed event for unknown session: session=%s", sessionID)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	req := &createReservation.Request{
		EventDate:       *snapshot.EventDate,
		Slot:            *snapshot.EventTime,
		CustomerName:    snapshot.Name,
		CustomerEmail:   snapshot.Email,
		StripeSessionID: sessionID,
		AmountCents:     domain.PackageAmountCents,
	}
	if snapshot.Message != "" {
		req.Message = ptr.Ptr(snapshot.Message)
	}

	result, err := h.reserve.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, createReservation.ErrSlotNotAvailable) {
			// Слот заняли между submit и подтверждением оплаты
			h.logger.Error("POST /webhooks/stripe - Slot taken for paid session: session=%s date=%s slot=%q",
				sessionID, req.EventDate.Format(domain.DateFormat), req.Slot)
			_ = h.submissions.ConfirmFailure(r.Context(), sessionID,
				"The selected time slot is no longer available. We will contact you to reschedule.")
			handlers.RespondJSON(w, http.StatusOK, nil)
			return
		}

		// Временная ошибка БД: отвечаем 500, Stripe доставит событие повторно
		h.logger.Error("POST /webhooks/stripe - Failed to persist reservation: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if result.AlreadyExisted {
		h.logger.Info("POST /webhooks/stripe - Duplicate delivery, reservation exists: session=%s id=%d",
			sessionID, result.ID)
	} else {
		h.logger.Info("POST /webhooks/stripe - Reservation created: session=%s id=%d date=%s slot=%q",
			sessionID, result.ID, result.EventDate.Format(domain.DateFormat), result.Slot)
	}

	if err := h.submissions.ConfirmSuccess(r.Context(), sessionID); err != nil &&
		!errors.Is(err, submissionService.ErrSubmissionNotFound) {
		h.logger.Warn("POST /webhooks/stripe - Confirm success failed: session=%s, error=%v", sessionID, err)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) logUnknownSession(event, sessionID string, err error) {
	if errors.Is(err, submissionService.ErrSubmissionNotFound) {
		h.logger.Warn("POST /webhooks/stripe - %s event for unknown session: session=%s", event, sessionID)
		return
	}
	h.logger.Error("POST /webhooks/stripe - Failed to handle %s event: session=%s, error=%v", event, sessionID, err)
}
