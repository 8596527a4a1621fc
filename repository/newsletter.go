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

// NewsletterRepository defines the data-access contract for newsletter
// subscribers.
type NewsletterRepository interface {
	Create(ctx context.Context, email, name string) (string, error)
	List(ctx context.Context) ([]model.NewsletterSubscriber, error)
}

type MongoNewsletterRepository struct {
	collection *mongo.Collection
}

func NewMongoNewsletterRepository(db *mongo.Database) *MongoNewsletterRepository {
	return &MongoNewsletterRepository{collection: db.Collection("newsletter_subscribers")}
}

// Create stores a new subscriber unless the email is already present.
// Uniqueness is a check-then-insert, not a store-level constraint.
func (r *MongoNewsletterRepository) Create(ctx context.Context, email, name string) (string, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrAlreadySubscribed
	}

	subscriber := model.NewsletterSubscriber{
		Email:        email,
		Name:         name,
		SubscribedAt: time.Now(),
		Active:       true,
	}

	result, err := r.collection.InsertOne(ctx, subscriber)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// List returns all subscribers, most recent first.
func (r *MongoNewsletterRepository) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subscribers := []model.NewsletterSubscriber{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}
