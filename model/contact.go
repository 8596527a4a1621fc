package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a contact-form submission. Status starts as "unread";
// nothing in the API mutates it after creation.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	Replied   bool               `bson:"replied" json:"replied"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
