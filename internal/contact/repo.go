package contact

import "context"

// ContactMessageRepo persists contact form messages. The entity has
// no read or delete surface, so the contract is create-only.
type ContactMessageRepo interface {
	Create(ctx context.Context, message *ContactMessage) error
}
