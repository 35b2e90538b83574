package reservations

import "time"

const (
	// ReservationTopic delivers reservation lifecycle events.
	ReservationTopic = "reservations.lifecycle"

	// EventReservationCreated identifies a created reservation payload.
	EventReservationCreated = "reservation.created"
	// EventReservationCancelled identifies a cancelled (deleted) reservation payload.
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent captures the minimal information downstream
// consumers need about a reservation lifecycle change.
type ReservationEvent struct {
	EventType     string    `json:"event_type"`
	ReservationID string    `json:"reservation_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Guests        int       `json:"guests,omitempty"`
	Source        string    `json:"source,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
