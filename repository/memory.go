package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anishgupta6801/LUMINA-WEBSITE/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations used by tests. They mirror the Mongo
// repositories' behavior, including id generation and sort order.

type MemoryReservationRepository struct {
	mu           sync.Mutex
	reservations []model.Reservation
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{}
}

func (r *MemoryReservationRepository) Create(ctx context.Context, reservation *model.Reservation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation.ID = primitive.NewObjectID()
	reservation.Status = model.StatusPending
	reservation.Confirmed = false
	reservation.CreatedAt = time.Now()

	r.reservations = append(r.reservations, *reservation)
	return reservation.ID.Hex(), nil
}

func (r *MemoryReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Reservation, len(r.reservations))
	copy(out, r.reservations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryReservationRepository) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	for i := range r.reservations {
		if r.reservations[i].ID == objectID {
			modified := r.reservations[i].Status != status
			r.reservations[i].Status = status
			r.reservations[i].Confirmed = status == model.StatusConfirmed
			r.reservations[i].UpdatedAt = time.Now()
			return modified, nil
		}
	}
	return false, ErrNotFound
}

type MemoryContactRepository struct {
	mu       sync.Mutex
	messages []model.ContactMessage
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

func (r *MemoryContactRepository) Create(ctx context.Context, message *model.ContactMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = primitive.NewObjectID()
	message.Status = "unread"
	message.Replied = false
	message.CreatedAt = time.Now()

	r.messages = append(r.messages, *message)
	return message.ID.Hex(), nil
}

func (r *MemoryContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.ContactMessage, len(r.messages))
	copy(out, r.messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type MemoryNewsletterRepository struct {
	mu          sync.Mutex
	subscribers []model.NewsletterSubscriber
}

func NewMemoryNewsletterRepository() *MemoryNewsletterRepository {
	return &MemoryNewsletterRepository{}
}

func (r *MemoryNewsletterRepository) Create(ctx context.Context, email, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subscribers {
		if s.Email == email {
			return "", ErrAlreadySubscribed
		}
	}

	subscriber := model.NewsletterSubscriber{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Name:         name,
		SubscribedAt: time.Now(),
		Active:       true,
	}
	r.subscribers = append(r.subscribers, subscriber)
	return subscriber.ID.Hex(), nil
}

func (r *MemoryNewsletterRepository) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.NewsletterSubscriber, len(r.subscribers))
	copy(out, r.subscribers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubscribedAt.After(out[j].SubscribedAt)
	})
	return out, nil
}
