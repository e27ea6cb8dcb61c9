package domain

import "time"

// Reservation represents a confirmed booking: a (date, slot) pair that
// removes the slot from availability on that date, plus the customer data
// denormalized from the draft at confirmation time.
type Reservation struct {
	ID        int64
	EventDate time.Time
	Slot      TimeSlot

	// Denormalized customer data for history and notifications
	CustomerName  string
	CustomerEmail string
	Message       *string

	// Reference to the payment session that confirmed this reservation
	StripeSessionID string
	AmountCents     int64

	CreatedAt time.Time
}

// Occupies returns true if the reservation removes the given slot from
// availability on the given date
func (r *Reservation) Occupies(date time.Time, slot TimeSlot) bool {
	return r.Slot == slot && isSameDay(r.EventDate, date)
}
