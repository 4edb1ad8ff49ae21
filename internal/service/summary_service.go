package service

import (
	"context"
	"errors"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/repository"
)

// ErrMonthOutOfRange rejects month values outside 1..12.
var ErrMonthOutOfRange = errors.New("month must be between 1 and 12")

type SummaryService struct {
	txRepo repository.Transactions

	// now is swappable in tests to pin the default month/year.
	now func() time.Time
}

func NewSummaryService(txRepo repository.Transactions) *SummaryService {
	return &SummaryService{txRepo: txRepo, now: time.Now}
}

// Monthly sums the owner's transactions grouped by (category, status) over
// one calendar month. A zero month or year falls back to the current one.
// Months are 1-indexed at the interface (1 = January).
func (s *SummaryService) Monthly(ctx context.Context, owner *models.User, month, year int) ([]models.SummaryGroup, error) {
	from, to, err := monthWindow(month, year, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return s.txRepo.SummarizeWindow(ctx, owner.ID, from, to)
}

// monthWindow resolves the closed interval [first, last] of the target
// month in UTC. The 1-indexed month converts to time.Month directly; the
// upper bound is day 0 of the following month, which time.Date normalizes
// to the last day of the target month.
func monthWindow(month, year int, now time.Time) (time.Time, time.Time, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrMonthOutOfRange
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return from, to, nil
}
