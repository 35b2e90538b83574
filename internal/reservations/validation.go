package reservations

import (
	"context"
	"fmt"
	"strings"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

func ValidateReservationCreate(ctx context.Context, req ReservationCreateRequest) []string {
	var errors []string

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, "name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, "email is required")
	}

	if strings.TrimSpace(req.Phone) == "" {
		errors = append(errors, "phone is required")
	}

	if strings.TrimSpace(req.Date) == "" {
		errors = append(errors, "date is required")
	}

	if strings.TrimSpace(req.Time) == "" {
		errors = append(errors, "time is required")
	}

	if req.Guests < MinGuests || req.Guests > MaxGuests {
		errors = append(errors, fmt.Sprintf("guests must be between %d and %d", MinGuests, MaxGuests))
	}

	return errors
}
