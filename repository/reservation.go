package repository

import (
	"context"
	"time"

	"github.com/anishgupta6801/LUMINA-WEBSITE/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReservationRepository defines the data-access contract for reservations.
// Controllers depend only on this interface.
type ReservationRepository interface {
	Create(ctx context.Context, r *model.Reservation) (string, error)
	List(ctx context.Context) ([]model.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (bool, error)
}

type MongoReservationRepository struct {
	collection *mongo.Collection
}

func NewMongoReservationRepository(db *mongo.Database) *MongoReservationRepository {
	return &MongoReservationRepository{collection: db.Collection("reservations")}
}

// Create stores the reservation with status=pending, confirmed=false and a
// server-side creation timestamp, and returns the generated identifier.
func (r *MongoReservationRepository) Create(ctx context.Context, reservation *model.Reservation) (string, error) {
	reservation.Status = model.StatusPending
	reservation.Confirmed = false
	reservation.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, reservation)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all reservations, most recent first.
func (r *MongoReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := []model.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateStatus sets the status and recomputes confirmed in the same update.
// It reports whether the document was actually modified; re-setting the same
// status still matches but modifies nothing. An unknown or malformed id
// yields ErrNotFound.
func (r *MongoReservationRepository) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"confirmed": status == model.StatusConfirmed,
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return result.ModifiedCount > 0, nil
}
