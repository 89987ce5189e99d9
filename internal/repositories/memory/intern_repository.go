// Package memory provides an in-memory InternRepository. It enforces the same
// unique indexes as the MongoDB collection and is used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.InternRepository = (*InternRepository)(nil)

// InternRepository keeps interns in insertion order. It is safe for
// concurrent use.
type InternRepository struct {
	mu      sync.RWMutex
	order   []primitive.ObjectID
	interns map[primitive.ObjectID]models.Intern
}

// NewInternRepository creates an empty repository
func NewInternRepository() *InternRepository {
	return &InternRepository{
		interns: make(map[primitive.ObjectID]models.Intern),
	}
}

// EnsureIndexes is a no-op, uniqueness is checked on every insert
func (r *InternRepository) EnsureIndexes(context.Context) error { return nil }

// Ping always succeeds
func (r *InternRepository) Ping(context.Context) error { return nil }

// Create inserts a new intern, rejecting duplicate emails and referral codes
// the way a unique index would.
func (r *InternRepository) Create(_ context.Context, intern *models.Intern) error {
	if err := intern.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Email is checked before referral code so a record colliding on both
	// always reports the email index.
	for _, id := range r.order {
		if r.interns[id].Email == intern.Email {
			return duplicateKey("email", repositories.EmailIndex, intern.Email)
		}
	}
	for _, id := range r.order {
		if r.interns[id].ReferralCode == intern.ReferralCode {
			return duplicateKey("referralCode", repositories.ReferralCodeIndex, intern.ReferralCode)
		}
	}

	if intern.ID.IsZero() {
		intern.ID = primitive.NewObjectID()
	}
	stored := *intern
	stored.Rewards = append([]string(nil), intern.Rewards...)
	r.interns[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

// FindByID finds an intern by ID
func (r *InternRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intern, ok := r.interns[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return project(intern), nil
}

// FindByEmail finds an intern by exact email
func (r *InternRepository) FindByEmail(_ context.Context, email string) (*models.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if intern := r.interns[id]; intern.Email == email {
			return project(intern), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll returns every intern in insertion order
func (r *InternRepository) FindAll(context.Context) ([]*models.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	interns := make([]*models.Intern, 0, len(r.order))
	for _, id := range r.order {
		interns = append(interns, project(r.interns[id]))
	}
	return interns, nil
}

// Count returns the number of interns
func (r *InternRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.interns)), nil
}

// project copies a stored intern without its password
func project(intern models.Intern) *models.Intern {
	intern.Password = ""
	intern.Rewards = append([]string(nil), intern.Rewards...)
	return &intern
}

func duplicateKey(field, index, value string) error {
	return &repositories.DuplicateKeyError{
		Field: field,
		Err: fmt.Errorf("E11000 duplicate key error collection: interns index: %s dup key: { %s: %q }",
			index, field, value),
	}
}
