package get_draft

import (
	"github.com/corypride/pictureMePerfect360/internal/domain"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

// DraftResponse HTTP response model черновика с актуальной доступностью
type DraftResponse struct {
	DraftID        string   `json:"draftId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Message        string   `json:"message"`
	EventDate      *string  `json:"eventDate"`
	EventTime      *string  `json:"eventTime"`
	AvailableSlots []string `json:"availableSlots"`
}

// FromView конвертирует view сервиса в HTTP response
func FromView(view *draftService.View) *DraftResponse {
	d := view.Draft

	var eventDate *string
	if d.EventDate != nil {
		formatted := d.EventDate.Format(domain.DateFormat)
		eventDate = &formatted
	}

	var eventTime *string
	if d.EventTime != nil {
		slot := string(*d.EventTime)
		eventTime = &slot
	}

	slots := make([]string, len(view.AvailableSlots))
	for i, slot := range view.AvailableSlots {
		slots[i] = string(slot)
	}

	return &DraftResponse{
		DraftID:        d.ID,
		Name:           d.Name,
		Email:          d.Email,
		Message:        d.Message,
		EventDate:      eventDate,
		EventTime:      eventTime,
		AvailableSlots: slots,
	}
}
