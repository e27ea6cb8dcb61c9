package create_reservation

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// Request модель запроса на создание бронирования
// Формируется webhook-обработчиком из подтвержденной платежной сессии
type Request struct {
	EventDate       time.Time
	Slot            domain.TimeSlot
	CustomerName    string
	CustomerEmail   string
	Message         *string
	StripeSessionID string
	AmountCents     int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	EventDate time.Time
	Slot      domain.TimeSlot
	CreatedAt time.Time

	// AlreadyExisted признак, что бронирование для этой платежной сессии
	// уже было создано ранее (повторная доставка webhook события)
	AlreadyExisted bool
}
