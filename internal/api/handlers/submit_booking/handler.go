package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
)

const (
	msgDraftNotFound = "draft not found"
	msgInFlight      = "submission already in progress"
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

// Handle POST /api/v1/drafts/{draftId}/submit
//
// Результат всегда описывает состояние попытки: ошибки валидации приходят
// как 422 со списком полей, неудачная инициализация оплаты - как 200 с
// терминальным состоянием failed (retryable), успешный запуск - как 200 с
// checkout URL для redirect
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	result, err := h.service.Submit(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, submissionService.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submissionService.ErrSubmissionInFlight):
			h.logger.Warn("POST /drafts/{id}/submit - Submission in flight: id=%s", draftID)
			handlers.RespondConflict(w, msgInFlight)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit: id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if len(result.FieldErrors) > 0 {
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromSubmitResult(result))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSubmitResult(result))
}
