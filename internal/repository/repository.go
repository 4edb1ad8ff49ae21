package repository

import (
	"context"
	"errors"
	"time"

	"fintracker/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store-level errors translated by the service layer.
var (
	// ErrNotFound covers both a missing document and an ownership
	// mismatch; owner-scoped queries cannot tell the two apart.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateEmail is returned when the unique email index rejects
	// an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

type Users interface {
	Create(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type Transactions interface {
	Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Transaction, error)
	UpdateOwned(ctx context.Context, owner, id primitive.ObjectID, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteOwned(ctx context.Context, owner, id primitive.ObjectID) error
	SummarizeWindow(ctx context.Context, owner primitive.ObjectID, from, to time.Time) ([]models.SummaryGroup, error)
}

type Repository struct {
	Users        Users
	Transactions Transactions
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		Users:        NewUserRepo(db),
		Transactions: NewTransactionRepo(db),
	}
}
