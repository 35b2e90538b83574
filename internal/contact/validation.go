package contact

import (
	"context"
	"strings"
)

func ValidateContactMessageCreate(ctx context.Context, req ContactMessageCreateRequest) []string {
	var errors []string

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, "name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, "email is required")
	}

	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, "message is required")
	}

	return errors
}
