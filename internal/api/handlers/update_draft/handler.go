package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

const (
	msgInvalidBody     = "invalid request body"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDraftNotFound   = "draft not found"
	msgInvalidSlot     = "unknown time slot"
	msgSlotUnavailable = "time slot is not available for the selected date"
	msgDateNotBookable = "date is not available for booking"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	// Декодируем тело запроса
	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid request body: id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Формируем запрос к сервису (с парсингом даты)
	serviceReq, err := ToServiceRequest(&req)
	if err != nil {
		h.logger.Warn("PATCH /drafts/{id} - Invalid date format: id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	view, err := h.service.Update(r.Context(), draftID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, draftService.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id} - Draft not found: id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, draftService.ErrInvalidSlot):
			h.logger.Warn("PATCH /drafts/{id} - Invalid slot: id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, draftService.ErrSlotUnavailable):
			h.logger.Warn("PATCH /drafts/{id} - Slot unavailable: id=%s", draftID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, draftService.ErrDateNotBookable):
			h.logger.Warn("PATCH /drafts/{id} - Date not bookable: id=%s", draftID)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		default:
			h.logger.Error("PATCH /drafts/{id} - Failed to update draft: id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if view.TimeCleared {
		h.logger.Info("PATCH /drafts/{id} - Draft updated, event time cleared: id=%s", draftID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}
