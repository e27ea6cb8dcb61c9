package update_draft

import (
	"time"

	"github.com/corypride/pictureMePerfect360/internal/domain"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
)

// UpdateDraftRequest HTTP request model частичного обновления
// Отсутствующие поля не трогаются
type UpdateDraftRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   *string `json:"message"`
	EventDate *string `json:"eventDate"`
	EventTime *string `json:"eventTime"`
}

// DraftResponse HTTP response model черновика с актуальной доступностью
type DraftResponse struct {
	DraftID        string   `json:"draftId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Message        string   `json:"message"`
	EventDate      *string  `json:"eventDate"`
	EventTime      *string  `json:"eventTime"`
	AvailableSlots []string `json:"availableSlots"`

	// TimeCleared признак, что выбранное время было сброшено при смене даты
	TimeCleared bool `json:"timeCleared"`
}

// ToServiceRequest конвертирует HTTP request в запрос сервиса
func ToServiceRequest(req *UpdateDraftRequest) (draftService.UpdateRequest, error) {
	out := draftService.UpdateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if req.EventDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.EventDate)
		if err != nil {
			return draftService.UpdateRequest{}, err
		}
		out.EventDate = &date
	}

	if req.EventTime != nil {
		slot := domain.TimeSlot(*req.EventTime)
		out.EventTime = &slot
	}

	return out, nil
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
		TimeCleared:    view.TimeCleared,
	}
}
