package get_reservations

import (
	"net/http"
	"time"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
	"github.com/corypride/pictureMePerfect360/internal/domain"
)

const (
	msgMissingRange = "from and to query params are required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "from must not be after to"
)

type Handler struct {
	repo   ReservationRepository
	logger Logger
}

func NewHandler(repo ReservationRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /reservations - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if from.After(to) {
		h.logger.Warn("GET /reservations - Invalid range: from=%s to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	reservations, err := h.repo.ListByDateRange(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: from=%s to=%s, error=%v",
			fromStr, toStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Retrieved %d reservations: from=%s to=%s",
		len(reservations), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, FromReservations(from, to, reservations))
}
