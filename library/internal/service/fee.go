package service

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
)

const (
	loanPeriodDays = 14
	maxActiveLoans = 5

	dailyRateCents    = 50  // overdue days 1..7
	extendedRateCents = 100 // overdue day 8 and beyond
	tierDays          = 7
	maxFeeCents       = 1500
)

// ComputeFee returns the late fee in cents plus the number of overdue days
// for a loan due at dueDate, as of now. Only calendar dates are compared;
// time of day never changes the fee.
func ComputeFee(dueDate, now time.Time) (int64, int) {
	days := daysBetween(dueDate, now)
	if days <= 0 {
		return 0, 0
	}
	fee := int64(min(days, tierDays))*dailyRateCents +
		int64(max(0, days-tierDays))*extendedRateCents
	if fee > maxFeeCents {
		fee = maxFeeCents
	}
	return fee, days
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

func centsToDollars(cents int64) float64 { return float64(cents) / 100 }

func dollarsToCents(dollars float64) int64 { return int64(math.Round(dollars * 100)) }

// GetFeeQuote computes the current late fee for the patron's active loan on
// the book. Failures degrade to a zero quote with an explanatory status, the
// caller always gets a usable answer.
func (s *Service) GetFeeQuote(ctx context.Context, patronID string, bookID int64) model.FeeQuote {
	if !patronIDRe.MatchString(patronID) {
		return model.FeeQuote{Status: model.FeeStatusInvalidPatron}
	}

	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.FeeQuote{Status: model.FeeStatusBookNotFound}
		}
		s.log.Error("fee quote: get book", zap.Int64("book_id", bookID), zap.Error(err))
		return model.FeeQuote{Status: model.FeeStatusFailed}
	}

	rec, err := s.repo.GetActiveLoan(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.FeeQuote{Status: model.FeeStatusNoActiveLoan}
		}
		s.log.Error("fee quote: get active loan",
			zap.String("patron_id", patronID), zap.Int64("book_id", bookID), zap.Error(err))
		return model.FeeQuote{Status: model.FeeStatusFailed}
	}

	cents, days := ComputeFee(rec.DueDate, s.now())
	status := model.FeeStatusOnTime
	if days > 0 {
		status = model.FeeStatusOverdue
	}
	return model.FeeQuote{
		FeeAmount:   centsToDollars(cents),
		DaysOverdue: days,
		Status:      status,
	}
}
