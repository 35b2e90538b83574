package reservations

import (
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
)

const StatusConfirmed = "confirmed"

// Reservation is a confirmed booking for a given date and time slot.
// Date and Time are kept as plain "2006-01-02" / "15:04" strings, the
// same representation the site sends and stores.
type Reservation struct {
	ID              uuid.UUID `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone" bson:"phone"`
	Date            string    `json:"date" bson:"date"`
	Time            string    `json:"time" bson:"time"`
	Guests          int       `json:"guests" bson:"guests"`
	SpecialRequests string    `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
	Status          string    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

func NewReservation() *Reservation {
	return &Reservation{
		ID:     apt.GenerateNewID(),
		Status: StatusConfirmed,
	}
}

func (r *Reservation) GetID() uuid.UUID {
	return r.ID
}

func (r *Reservation) ResourceType() string {
	return "reservation"
}

func (r *Reservation) SetID(id uuid.UUID) {
	r.ID = id
}

func (r *Reservation) EnsureID() {
	if r.ID == uuid.Nil {
		r.ID = apt.GenerateNewID()
	}
}

// BeforeCreate stamps the immutable creation instant. Reservations are
// never mutated afterwards; cancellation removes the document.
func (r *Reservation) BeforeCreate() {
	r.EnsureID()
	r.CreatedAt = time.Now().UTC()
}
