package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unique index names on the interns collection. These are the server's
// default names for single-field ascending indexes.
const (
	EmailIndex        = "email_1"
	ReferralCodeIndex = "referralCode_1"
)

// ErrNotFound is returned when a lookup matches no document
var ErrNotFound = errors.New("intern not found")

// DuplicateKeyError reports a unique index violation raised by the store
type DuplicateKeyError struct {
	Field string // "email" or "referralCode"
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("duplicate key error: %s already exists", e.Field)
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

// InternRepository defines the interface for intern data operations.
// Reads never populate Password.
type InternRepository interface {
	Create(ctx context.Context, intern *models.Intern) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Intern, error)
	FindByEmail(ctx context.Context, email string) (*models.Intern, error)
	FindAll(ctx context.Context) ([]*models.Intern, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
	Ping(ctx context.Context) error
}
