package submission

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// draftFields поля черновика в форме, пригодной для validator
type draftFields struct {
	Name      string     `validate:"required,min=2,max=100"`
	Email     string     `validate:"required,email"`
	EventDate *time.Time `validate:"required"`
	EventTime *string    `validate:"required"`
	Message   string     `validate:"omitempty,max=1000"`
}

// validateDraft выполняет полную валидацию полей перед оплатой
// Возвращает список ошибок по полям; пустой список - черновик валиден
func validateDraft(d *domain.BookingDraft) []FieldError {
	fields := draftFields{
		Name:      d.Name,
		Email:     d.Email,
		EventDate: d.EventDate,
		Message:   d.Message,
	}
	if d.EventTime != nil {
		s := string(*d.EventTime)
		fields.EventTime = &s
	}

	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: "invalid form data"}}
	}

	result := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{
			Field:   fieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return result
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "EventDate":
		return "eventDate"
	case "EventTime":
		return "eventTime"
	case "Message":
		return "message"
	default:
		return structField
	}
}

// fieldMessage возвращает сообщение для пользователя
// Тексты соответствуют сообщениям формы на сайте
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name must be at least 2 characters."
	case "Email":
		return "Please enter a valid email address."
	case "EventDate":
		return "An event date is required."
	case "EventTime":
		return "An event time is required."
	case "Message":
		return "Message is too long."
	default:
		return "Invalid value."
	}
}
