package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsletterSubscriber records a signup. Email is unique across the
// collection; Active is always true at creation and there is no
// deactivation path.
type NewsletterSubscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
	Active       bool               `bson:"active" json:"active"`
}
