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

// ContactRepository defines the data-access contract for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) (string, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type MongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection("contact_messages")}
}

// Create stores the message as unread with a server-side creation timestamp.
func (r *MongoContactRepository) Create(ctx context.Context, message *model.ContactMessage) (string, error) {
	message.Status = "unread"
	message.Replied = false
	message.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all contact messages, most recent first.
func (r *MongoContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []model.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
