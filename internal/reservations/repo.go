package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no reservation matches
// the given id. Deleting an already-removed reservation reports it
// again, so repeated cancellations stay a 404 at the boundary.
var ErrNotFound = errors.New("reservation not found")

type ReservationRepo interface {
	Create(ctx context.Context, reservation *Reservation) error
	Get(ctx context.Context, id uuid.UUID) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
