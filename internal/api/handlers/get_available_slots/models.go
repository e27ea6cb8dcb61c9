package get_available_slots

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	getAvailableSlots "github.com/corypride/pictureMePerfect360/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     *string  `json:"date"`
	Slots    []string `json:"slots"`
	Bookable bool     `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = string(slot)
	}

	var date *string
	if resp.Date != nil {
		formatted := resp.Date.Format(domain.DateFormat)
		date = &formatted
	}

	return &AvailableSlotsResponse{
		Date:     date,
		Slots:    slots,
		Bookable: resp.Bookable,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая строка даты означает "дата не выбрана"
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	if dateStr == "" {
		return &getAvailableSlots.Request{}, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: &date}, nil
}
