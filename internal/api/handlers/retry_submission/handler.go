package retry_submission

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

const (
	msgNotFound     = "no submission for this draft"
	msgNotRetryable = "submission is not in a failed state"
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

// Handle POST /api/v1/drafts/{draftId}/submission/retry
// Перевод failed -> idle по явному действию пользователя, черновик сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	status, err := h.service.Retry(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, submissionService.ErrSubmissionNotFound):
			h.logger.Warn("POST /drafts/{id}/submission/retry - Submission not found: id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, submissionService.ErrNotRetryable):
			h.logger.Warn("POST /drafts/{id}/submission/retry - Not retryable: id=%s", draftID)
			handlers.RespondConflict(w, msgNotRetryable)

		default:
			h.logger.Error("POST /drafts/{id}/submission/retry - Failed to retry: id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/submission/retry - Submission reset: id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, FromStatus(status))
}
