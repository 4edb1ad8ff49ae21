package service

import (
	"context"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/repository"
)

// RegisterInput carries the fields of a registration request. Email is
// normalized to lowercase before any store access.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	ProfilePic string
}

// TransactionInput carries the fields of a create request, already parsed.
type TransactionInput struct {
	Title    string
	Amount   float64
	Status   string
	Category string
	Date     time.Time
}

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	UserFromToken(ctx context.Context, accessToken string) (*models.User, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// Transactions exposes owner-scoped CRUD over income/expense records.
type Transactions interface {
	List(ctx context.Context, owner *models.User) ([]models.Transaction, error)
	Create(ctx context.Context, owner *models.User, in TransactionInput) (*models.Transaction, error)
	Update(ctx context.Context, owner *models.User, id string, patch models.TransactionPatch) (*models.Transaction, error)
	Delete(ctx context.Context, owner *models.User, id string) error
}

// Summary computes grouped monthly totals.
type Summary interface {
	Monthly(ctx context.Context, owner *models.User, month, year int) ([]models.SummaryGroup, error)
}

// AuthConfig is the process-wide token configuration, loaded once at
// startup and injected rather than read from globals.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Transactions
	Summary
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Transactions:  NewTransactionService(repos.Transactions),
		Summary:       NewSummaryService(repos.Transactions),
	}
}
