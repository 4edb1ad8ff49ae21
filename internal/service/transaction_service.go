package service

import (
	"context"
	"errors"

	"fintracker/internal/models"
	"fintracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrTransactionNotFound covers a missing record, one owned by someone
// else, and a malformed id. The three cases must not be distinguishable.
var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionService struct {
	txRepo repository.Transactions
}

func NewTransactionService(txRepo repository.Transactions) *TransactionService {
	return &TransactionService{txRepo: txRepo}
}

// List returns every transaction created by the owner.
func (s *TransactionService) List(ctx context.Context, owner *models.User) ([]models.Transaction, error) {
	return s.txRepo.ListByOwner(ctx, owner.ID)
}

// Create persists a new transaction. The owner always comes from the
// authenticated identity, never from the request body.
func (s *TransactionService) Create(ctx context.Context, owner *models.User, in TransactionInput) (*models.Transaction, error) {
	return s.txRepo.Create(ctx, &models.Transaction{
		Title:     in.Title,
		Amount:    in.Amount,
		Status:    in.Status,
		Category:  in.Category,
		Date:      in.Date.UTC(),
		CreatedBy: owner.ID,
	})
}

// Update applies a partial patch to an owned transaction.
func (s *TransactionService) Update(ctx context.Context, owner *models.User, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	txID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}

	t, err := s.txRepo.UpdateOwned(ctx, owner.ID, txID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes an owned transaction.
func (s *TransactionService) Delete(ctx context.Context, owner *models.User, id string) error {
	txID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	if err := s.txRepo.DeleteOwned(ctx, owner.ID, txID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	return nil
}
