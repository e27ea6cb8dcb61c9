package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден (или истек)
	ErrDraftNotFound = errors.New("draft not found")

	// ErrInvalidSlot возвращается, когда слот не входит в каталог
	ErrInvalidSlot = errors.New("invalid time slot")

	// ErrSlotUnavailable возвращается при попытке выбрать слот, уже занятый
	// на выбранную дату
	ErrSlotUnavailable = errors.New("slot is not available for the selected date")

	// ErrDateNotBookable возвращается при попытке выбрать прошедшую дату
	ErrDateNotBookable = errors.New("date is not bookable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("draft service: internal error")
)
