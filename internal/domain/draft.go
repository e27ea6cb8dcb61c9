package domain

import "time"

// BookingDraft is the in-progress, user-editable booking form data prior to
// submission. A draft accepts transiently invalid field values (a one-char
// name while the user is typing); full validation happens only at submit.
//
// Invariant: EventTime, once set, belongs to the set of slots available for
// EventDate at the time of setting. If EventDate changes so that the chosen
// EventTime is no longer available, EventTime reverts to unset.
type BookingDraft struct {
	ID string

	Name      string
	Email     string
	EventDate *time.Time
	EventTime *TimeSlot
	Message   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone возвращает глубокую копию черновика
func (d *BookingDraft) Clone() *BookingDraft {
	if d == nil {
		return nil
	}
	c := *d
	if d.EventDate != nil {
		date := *d.EventDate
		c.EventDate = &date
	}
	if d.EventTime != nil {
		slot := *d.EventTime
		c.EventTime = &slot
	}
	return &c
}
