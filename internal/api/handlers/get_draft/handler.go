package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

const (
	msgDraftNotFound = "draft not found"
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

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	view, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, draftService.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}
