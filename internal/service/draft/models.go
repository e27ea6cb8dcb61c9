package draft

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// UpdateRequest частичное обновление полей черновика
// Заполненные (не nil) поля применяются, остальные не трогаются
type UpdateRequest struct {
	Name      *string
	Email     *string
	Message   *string
	EventDate *time.Time
	EventTime *domain.TimeSlot
}

// View черновик вместе с актуальной доступностью слотов для его даты
type View struct {
	Draft          *domain.BookingDraft
	AvailableSlots []domain.TimeSlot

	// TimeCleared признак, что выбранное время было сброшено при смене
	// даты (слот занят на новую дату)
	TimeCleared bool
}
