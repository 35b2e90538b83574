package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/legrosarbre/backend/internal/contact"
)

type ContactMessageRepo struct {
	collection *mongo.Collection
}

func NewContactMessageRepo(db *mongo.Database) *ContactMessageRepo {
	return &ContactMessageRepo{
		collection: db.Collection("contact_messages"),
	}
}

func (r *ContactMessageRepo) Create(ctx context.Context, message *contact.ContactMessage) error {
	if message == nil {
		return fmt.Errorf("contact message is nil")
	}

	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("cannot create contact message: %w", err)
	}

	return nil
}
