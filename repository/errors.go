package repository

import "errors"

var (
	// ErrNotFound is returned when no document matches the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadySubscribed is returned when a newsletter signup uses an
	// email that already exists in the collection.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
