package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legrosarbre/backend/internal/reservations"
)

// ReservationRepo owns the MongoDB client lifecycle for the service
// and persists reservations. Other repos share its database handle.
type ReservationRepo struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
	logger     apt.Logger
	config     *apt.Config
}

func NewReservationRepo(config *apt.Config, logger apt.Logger) *ReservationRepo {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &ReservationRepo{
		logger: logger,
		config: config,
	}
}

func (r *ReservationRepo) Start(ctx context.Context) error {
	mongoURL, _ := r.config.GetString("db.mongo.url")
	connString := mongoURL
	if connString == "" {
		connString = "mongodb://localhost:27017"
	}

	dbName, _ := r.config.GetString("db.mongo.name")
	if dbName == "" {
		dbName = "legrosarbre"
	}

	clientOptions := options.Client().ApplyURI(connString).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("cannot connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("cannot ping MongoDB: %w", err)
	}

	r.client = client
	r.db = client.Database(dbName)
	r.collection = r.db.Collection("reservations")

	// Availability queries filter on the plain date string.
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("cannot create index: %w", err)
	}

	r.logger.Infof("Connected to MongoDB: %s, database: %s, collection: reservations", connString, dbName)
	return nil
}

func (r *ReservationRepo) Stop(ctx context.Context) error {
	if r.client != nil {
		if err := r.client.Disconnect(ctx); err != nil {
			return fmt.Errorf("cannot disconnect from MongoDB: %w", err)
		}
		r.logger.Info("Disconnected from MongoDB")
	}
	return nil
}

func (r *ReservationRepo) GetDatabase() *mongo.Database {
	return r.db
}

func (r *ReservationRepo) Create(ctx context.Context, reservation *reservations.Reservation) error {
	if reservation == nil {
		return fmt.Errorf("reservation is nil")
	}

	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("cannot create reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepo) Get(ctx context.Context, id uuid.UUID) (*reservations.Reservation, error) {
	var reservation reservations.Reservation
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get reservation: %w", err)
	}
	return &reservation, nil
}

func (r *ReservationRepo) List(ctx context.Context) ([]*reservations.Reservation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("cannot list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*reservations.Reservation
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode reservations: %w", err)
	}

	return result, nil
}

// ListByDate matches the stored date string exactly; there is no
// calendar normalization anywhere in the system.
func (r *ReservationRepo) ListByDate(ctx context.Context, date string) ([]*reservations.Reservation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("cannot list reservations by date: %w", err)
	}
	defer cursor.Close(ctx)

	var result []*reservations.Reservation
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("cannot decode reservations: %w", err)
	}

	return result, nil
}

func (r *ReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("cannot delete reservation: %w", err)
	}

	if result.DeletedCount == 0 {
		return reservations.ErrNotFound
	}

	return nil
}
