package create_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: slot %q is not in the catalog", ErrInvalidInput, req.Slot)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if req.StripeSessionID == "" {
		return fmt.Errorf("%w: stripeSessionID is required", ErrInvalidInput)
	}

	return nil
}
