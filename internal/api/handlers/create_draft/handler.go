package create_draft

import (
	"net/http"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: id=%s", view.Draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromView(view))
}
