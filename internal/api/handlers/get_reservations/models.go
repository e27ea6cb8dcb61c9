package get_reservations

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID            int64   `json:"id"`
	EventDate     string  `json:"eventDate"`
	Slot          string  `json:"slot"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Message       *string `json:"message,omitempty"`
	AmountCents   int64   `json:"amountCents"`
	CreatedAt     string  `json:"createdAt"`
}

// ReservationsResponse HTTP response model списка бронирований
type ReservationsResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromReservations конвертирует доменные модели в HTTP response
func FromReservations(from, to time.Time, reservations []*domain.Reservation) *ReservationsResponse {
	items := make([]ReservationResponse, len(reservations))
	for i, res := range reservations {
		items[i] = ReservationResponse{
			ID:            res.ID,
			EventDate:     res.EventDate.Format(domain.DateFormat),
			Slot:          string(res.Slot),
			CustomerName:  res.CustomerName,
			CustomerEmail: res.CustomerEmail,
			Message:       res.Message,
			AmountCents:   res.AmountCents,
			CreatedAt:     res.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ReservationsResponse{
		From:         from.Format(domain.DateFormat),
		To:           to.Format(domain.DateFormat),
		Reservations: items,
	}
}
