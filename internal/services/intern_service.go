package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInternExists is returned when the email is already registered
var ErrInternExists = errors.New("intern already exists")

// Donations assigned at signup fall in [MinDonations, MinDonations+donationSpread)
const (
	MinDonations   = 100
	donationSpread = 1000
)

// InternService defines the intern operations exposed over HTTP
type InternService interface {
	ListInterns(ctx context.Context) ([]*models.Intern, error)
	GetIntern(ctx context.Context, id primitive.ObjectID) (*models.Intern, error)
	CreateIntern(ctx context.Context, req *models.CreateInternRequest) (*models.Intern, error)
	DemoData() models.DemoData
	Ping(ctx context.Context) error
}

type internService struct {
	internRepo repositories.InternRepository
	now        func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewInternService creates a new InternService implementation
func NewInternService(internRepo repositories.InternRepository) InternService {
	return newInternService(internRepo, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newInternService(internRepo repositories.InternRepository, rng *rand.Rand, now func() time.Time) *internService {
	return &internService{
		internRepo: internRepo,
		now:        now,
		rng:        rng,
	}
}

// ListInterns returns every intern without passwords
func (s *internService) ListInterns(ctx context.Context) ([]*models.Intern, error) {
	return s.internRepo.FindAll(ctx)
}

// GetIntern returns one intern or repositories.ErrNotFound
func (s *internService) GetIntern(ctx context.Context, id primitive.ObjectID) (*models.Intern, error) {
	return s.internRepo.FindByID(ctx, id)
}

// CreateIntern registers a new intern with demo donations and the starter
// rewards. Only email uniqueness is checked here; the pre-check is not atomic
// with the insert, so an email duplicate-key error from the store is reported
// as ErrInternExists too. Referral code violations are returned unchanged.
func (s *internService) CreateIntern(ctx context.Context, req *models.CreateInternRequest) (*models.Intern, error) {
	_, err := s.internRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrInternExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	intern := &models.Intern{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ReferralCode:    req.ReferralCode,
		DonationsRaised: s.randomDonations(),
		Rewards:         append([]string(nil), models.StarterRewards...),
		CreatedAt:       s.now().UTC(),
	}

	if err := s.internRepo.Create(ctx, intern); err != nil {
		var dup *repositories.DuplicateKeyError
		if errors.As(err, &dup) && dup.Field == "email" {
			return nil, ErrInternExists
		}
		return nil, err
	}

	return intern, nil
}

// DemoData returns the fixed preview payload; it never touches the store
func (s *internService) DemoData() models.DemoData {
	return models.NewDemoData()
}

// Ping reports whether the store is reachable
func (s *internService) Ping(ctx context.Context) error {
	return s.internRepo.Ping(ctx)
}

func (s *internService) randomDonations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MinDonations + s.rng.Intn(donationSpread)
}
