package health

import (
	"net/http"

	"github.com/corypride/pictureMePerfect360/internal/api/handlers"
)

// HealthResponse HTTP response model отчета о состоянии сервиса
type HealthResponse struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	StripeConfigured bool   `json:"stripeConfigured"`
	EmailConfigured  bool   `json:"emailConfigured"`
}

type Handler struct {
	db               DBPinger
	stripeConfigured bool
	emailConfigured  bool
	logger           Logger
}

func NewHandler(db DBPinger, stripeConfigured, emailConfigured bool, logger Logger) *Handler {
	return &Handler{
		db:               db,
		stripeConfigured: stripeConfigured,
		emailConfigured:  emailConfigured,
		logger:           logger,
	}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:           "ok",
		Database:         "ok",
		StripeConfigured: h.stripeConfigured,
		EmailConfigured:  h.emailConfigured,
	}

	status := http.StatusOK
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error("GET /health - Database ping failed: %v", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, status, resp)
}
