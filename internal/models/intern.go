package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StarterRewards is the reward sequence every new intern starts with
var StarterRewards = []string{"Bronze Badge", "Silver Badge", "Gold Badge"}

// Intern represents a signed-up participant and their fundraising stats
type Intern struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"` // stored as submitted, never serialized
	ReferralCode    string             `bson:"referralCode" json:"referralCode"`
	DonationsRaised int                `bson:"donationsRaised" json:"donationsRaised"`
	Rewards         []string           `bson:"rewards" json:"rewards"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate applies the collection schema's required-field rule. It runs in
// the store layer, so a failure is reported as a store error.
func (i *Intern) Validate() error {
	var missing []string
	if i.Name == "" {
		missing = append(missing, "name")
	}
	if i.Email == "" {
		missing = append(missing, "email")
	}
	if i.Password == "" {
		missing = append(missing, "password")
	}
	if i.ReferralCode == "" {
		missing = append(missing, "referralCode")
	}
	if len(missing) > 0 {
		return errors.New("intern validation failed: missing required field(s): " + strings.Join(missing, ", "))
	}
	return nil
}

// Summary returns the reduced projection returned on creation
func (i *Intern) Summary() InternSummary {
	return InternSummary{ID: i.ID, Name: i.Name, Email: i.Email}
}

// CreateInternRequest is the signup payload. No binding rules: required
// fields are enforced by the store.
type CreateInternRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referralCode"`
}

// InternSummary is the id/name/email projection of an intern
type InternSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// CreateInternResponse is returned by POST /api/interns
type CreateInternResponse struct {
	Message string        `json:"message"`
	Intern  InternSummary `json:"intern"`
}

// ErrorResponse is the flat error body used by every endpoint
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
