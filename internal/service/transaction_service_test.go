package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeTxRepo is a hand-rolled mock for repository.Transactions.
type fakeTxRepo struct {
	createResp   *models.Transaction
	createErr    error
	listResp     []models.Transaction
	listErr      error
	updateResp   *models.Transaction
	updateErr    error
	deleteErr    error
	summarize    []models.SummaryGroup
	summarizeErr error

	lastOwner primitive.ObjectID
	lastID    primitive.ObjectID
	lastPatch models.TransactionPatch
	lastFrom  time.Time
	lastTo    time.Time
	created   []*models.Transaction
}

func (f *fakeTxRepo) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	f.created = append(f.created, t)
	if f.createResp != nil {
		return f.createResp, f.createErr
	}
	return t, f.createErr
}

func (f *fakeTxRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Transaction, error) {
	f.lastOwner = owner
	return f.listResp, f.listErr
}

func (f *fakeTxRepo) UpdateOwned(ctx context.Context, owner, id primitive.ObjectID, patch models.TransactionPatch) (*models.Transaction, error) {
	f.lastOwner = owner
	f.lastID = id
	f.lastPatch = patch
	return f.updateResp, f.updateErr
}

func (f *fakeTxRepo) DeleteOwned(ctx context.Context, owner, id primitive.ObjectID) error {
	f.lastOwner = owner
	f.lastID = id
	return f.deleteErr
}

func (f *fakeTxRepo) SummarizeWindow(ctx context.Context, owner primitive.ObjectID, from, to time.Time) ([]models.SummaryGroup, error) {
	f.lastOwner = owner
	f.lastFrom = from
	f.lastTo = to
	return f.summarize, f.summarizeErr
}

func TestTransactionService_CreateSetsOwnerFromIdentity(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := NewTransactionService(repo)
	owner := &models.User{ID: primitive.NewObjectID()}

	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), owner, TransactionInput{
		Title: "Groceries", Amount: 20, Status: "expense", Category: "Food", Date: date,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CreatedBy != owner.ID {
		t.Fatalf("owner: got %v, want %v", created.CreatedBy, owner.ID)
	}
	if !created.Date.Equal(date) {
		t.Fatalf("date: got %v, want %v", created.Date, date)
	}
}

func TestTransactionService_ListScopedToOwner(t *testing.T) {
	repo := &fakeTxRepo{listResp: []models.Transaction{{Title: "Rent"}}}
	svc := NewTransactionService(repo)
	owner := &models.User{ID: primitive.NewObjectID()}

	got, err := svc.List(context.Background(), owner)
	if err != nil || len(got) != 1 {
		t.Fatalf("List: got %v, err=%v", got, err)
	}
	if repo.lastOwner != owner.ID {
		t.Fatalf("owner not forwarded to repo: %v", repo.lastOwner)
	}
}

func TestTransactionService_UpdateMapsNotFound(t *testing.T) {
	repo := &fakeTxRepo{updateErr: repository.ErrNotFound}
	svc := NewTransactionService(repo)
	owner := &models.User{ID: primitive.NewObjectID()}

	_, err := svc.Update(context.Background(), owner, primitive.NewObjectID().Hex(), models.TransactionPatch{})
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionService_MalformedIDIsNotFound(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := NewTransactionService(repo)
	owner := &models.User{ID: primitive.NewObjectID()}

	if _, err := svc.Update(context.Background(), owner, "zzz", models.TransactionPatch{}); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("update: expected ErrTransactionNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, "zzz"); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("delete: expected ErrTransactionNotFound, got %v", err)
	}
	if repo.lastID != primitive.NilObjectID {
		t.Fatal("repo should not be reached for a malformed id")
	}
}

func TestTransactionService_DeleteForwardsOwnerAndID(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := NewTransactionService(repo)
	owner := &models.User{ID: primitive.NewObjectID()}
	id := primitive.NewObjectID()

	if err := svc.Delete(context.Background(), owner, id.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.lastOwner != owner.ID || repo.lastID != id {
		t.Fatalf("scope not forwarded: owner=%v id=%v", repo.lastOwner, repo.lastID)
	}
}
