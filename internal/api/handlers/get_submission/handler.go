package get_submission

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/submission
// Используется фронтом для polling состояния после redirect на оплату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	status, err := h.service.Status(r.Context(), draftID)
	if err != nil {
		h.logger.Error("GET /drafts/{id}/submission - Failed to get status: id=%s, error=%v", draftID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromStatus(status))
}
