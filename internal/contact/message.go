package contact

import (
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
)

// ContactMessage is a message left through the site's contact form.
// Messages are written once and never updated or removed.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func NewContactMessage() *ContactMessage {
	return &ContactMessage{
		ID: apt.GenerateNewID(),
	}
}

func (m *ContactMessage) GetID() uuid.UUID {
	return m.ID
}

func (m *ContactMessage) ResourceType() string {
	return "contact-message"
}

func (m *ContactMessage) SetID(id uuid.UUID) {
	m.ID = id
}

func (m *ContactMessage) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = apt.GenerateNewID()
	}
}

func (m *ContactMessage) BeforeCreate() {
	m.EnsureID()
	m.CreatedAt = time.Now().UTC()
}
