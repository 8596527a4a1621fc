package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the three accepted reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Reservation is a booking-form submission. Guests is string-typed because
// the form offers "10+" alongside the numeric options. Confirmed is derived
// from Status and is never accepted from the client.
type Reservation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	Date            string             `bson:"date" json:"date"`
	Time            string             `bson:"time" json:"time"`
	Guests          string             `bson:"guests" json:"guests"`
	Occasion        string             `bson:"occasion,omitempty" json:"occasion,omitempty"`
	SpecialRequests string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	Status          ReservationStatus  `bson:"status" json:"status"`
	Confirmed       bool               `bson:"confirmed" json:"confirmed"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
