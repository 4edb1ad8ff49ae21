package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusIncome  = "income"
	StatusExpense = "expense"
)

// Transaction is a single income or expense record owned by one user.
type Transaction struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Amount    float64            `json:"amount" bson:"amount"`
	Status    string             `json:"status" bson:"status"` // income | expense
	Category  string             `json:"category" bson:"category"`
	Date      time.Time          `json:"date" bson:"date"` // day granularity, UTC midnight
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TransactionPatch carries the fields of a partial update; nil means
// "leave unchanged".
type TransactionPatch struct {
	Title    *string
	Amount   *float64
	Status   *string
	Category *string
	Date     *time.Time
}

// IsZero reports whether the patch changes nothing.
func (p TransactionPatch) IsZero() bool {
	return p.Title == nil && p.Amount == nil && p.Status == nil && p.Category == nil && p.Date == nil
}
