package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintracker/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionsCollection = "transactions"

type TransactionRepo struct {
	coll *mongo.Collection
}

func NewTransactionRepo(db *mongo.Database) *TransactionRepo {
	return &TransactionRepo{coll: db.Collection(transactionsCollection)}
}

var _ Transactions = (*TransactionRepo)(nil)

// ownedFilter matches a single document by id restricted to its owner.
// Every mutation goes through this filter so ownership is enforced at the
// query level, never by post-filtering in application code.
func ownedFilter(owner, id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "createdBy": owner}
}

// patchDocument converts the non-nil fields of a patch into a $set document.
func patchDocument(p models.TransactionPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Amount != nil {
		set["amount"] = *p.Amount
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	return bson.M{"$set": set}
}

// summaryPipeline groups the owner's transactions inside [from, to] by
// (category, status) and sums their amounts.
func summaryPipeline(owner primitive.ObjectID, from, to time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "createdBy", Value: owner},
			{Key: "date", Value: bson.D{
				{Key: "$gte", Value: from},
				{Key: "$lte", Value: to},
			}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "category", Value: "$category"},
				{Key: "status", Value: "$status"},
			}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
}

// Create inserts a transaction, stamping creation/update times, and returns
// the stored document with its assigned id.
func (r *TransactionRepo) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("insert transaction %q: %w", t.Title, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	t.ID = id
	return t, nil
}

// ListByOwner returns all transactions created by the owner.
func (r *TransactionRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Transaction, error) {
	cur, err := r.coll.Find(ctx, bson.M{"createdBy": owner})
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", owner.Hex(), err)
	}
	defer cur.Close(ctx)

	out := []models.Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode transactions for %s: %w", owner.Hex(), err)
	}
	return out, nil
}

// UpdateOwned applies the patch to the document if it exists and is owned.
// Returns ErrNotFound otherwise; the post-update document on success.
func (r *TransactionRepo) UpdateOwned(ctx context.Context, owner, id primitive.ObjectID, patch models.TransactionPatch) (*models.Transaction, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := patchDocument(patch, time.Now().UTC())

	var t models.Transaction
	err := r.coll.FindOneAndUpdate(ctx, ownedFilter(owner, id), update, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update transaction %s: %w", id.Hex(), err)
	}
	return &t, nil
}

// DeleteOwned removes the document if it exists and is owned.
func (r *TransactionRepo) DeleteOwned(ctx context.Context, owner, id primitive.ObjectID) error {
	err := r.coll.FindOneAndDelete(ctx, ownedFilter(owner, id)).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("delete transaction %s: %w", id.Hex(), err)
	}
	return nil
}

// summaryRow is the raw shape produced by the $group stage.
type summaryRow struct {
	ID struct {
		Category string `bson:"category"`
		Status   string `bson:"status"`
	} `bson:"_id"`
	Total float64 `bson:"total"`
}

// SummarizeWindow runs the grouped-sum pipeline over the owner's
// transactions dated inside the closed interval [from, to].
func (r *TransactionRepo) SummarizeWindow(ctx context.Context, owner primitive.ObjectID, from, to time.Time) ([]models.SummaryGroup, error) {
	cur, err := r.coll.Aggregate(ctx, summaryPipeline(owner, from, to))
	if err != nil {
		return nil, fmt.Errorf("aggregate summary for %s: %w", owner.Hex(), err)
	}
	defer cur.Close(ctx)

	var rows []summaryRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode summary for %s: %w", owner.Hex(), err)
	}

	groups := make([]models.SummaryGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, models.SummaryGroup{
			Category: row.ID.Category,
			Status:   row.ID.Status,
			Total:    row.Total,
		})
	}
	return groups, nil
}
