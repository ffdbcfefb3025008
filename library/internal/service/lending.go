package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
)

// Borrow hands a copy of the book to the patron for loanPeriodDays. The
// record insert and the availability decrement commit together or not at all.
func (s *Service) Borrow(ctx context.Context, patronID string, bookID int64) (model.BorrowResult, error) {
	if !patronIDRe.MatchString(patronID) {
		return model.BorrowResult{}, errs.New(errs.ErrValidation, "Invalid patron ID. Must be exactly 6 digits.")
	}

	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BorrowResult{}, errs.New(errs.ErrNotFound, "Book not found.")
		}
		return model.BorrowResult{}, errs.New(errs.ErrPersistence, "Database error occurred while creating borrow record.")
	}
	if book.AvailableCopies <= 0 {
		return model.BorrowResult{}, errs.New(errs.ErrUnavailable, "This book is currently not available.")
	}

	active, err := s.repo.CountActiveLoans(ctx, patronID)
	if err != nil {
		return model.BorrowResult{}, errs.New(errs.ErrPersistence, "Database error occurred while creating borrow record.")
	}
	if active >= maxActiveLoans {
		return model.BorrowResult{}, errs.New(errs.ErrLimitExceeded, "You have reached the maximum borrowing limit of 5 books.")
	}

	now := s.now()
	rec, err := s.repo.CreateLoan(ctx, patronID, bookID, now, now.AddDate(0, 0, loanPeriodDays))
	if err != nil {
		// the guarded decrement lost a race for the last copy
		if errors.Is(err, errs.ErrUnavailable) {
			return model.BorrowResult{}, errs.New(errs.ErrUnavailable, "This book is currently not available.")
		}
		return model.BorrowResult{}, errs.New(errs.ErrPersistence, "Database error occurred while creating borrow record.")
	}

	s.log.Info("book borrowed",
		zap.String("patron_id", patronID), zap.Int64("book_id", bookID),
		zap.Time("due_date", rec.DueDate))

	return model.BorrowResult{
		Message:  fmt.Sprintf("Successfully borrowed %q. Due date: %s.", book.Title, rec.DueDate.Format(time.DateOnly)),
		DueDate:  rec.DueDate.Format(time.DateOnly),
		RecordID: rec.ID,
	}, nil
}

// Return closes the patron's most recent active loan on the book and quotes
// any late fee in the message. The return stamp and the availability
// increment commit together or not at all.
func (s *Service) Return(ctx context.Context, patronID string, bookID int64) (model.ReturnResult, error) {
	if !patronIDRe.MatchString(patronID) {
		return model.ReturnResult{}, errs.New(errs.ErrValidation, "Invalid patron ID (need 6 digits).")
	}

	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ReturnResult{}, errs.New(errs.ErrNotFound, "Book not found.")
		}
		return model.ReturnResult{}, errs.New(errs.ErrPersistence, "Couldn't record the return in the database.")
	}

	rec, err := s.repo.GetActiveLoan(ctx, patronID, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ReturnResult{}, errs.New(errs.ErrNotFound, "No active loan for this patron and book.")
		}
		return model.ReturnResult{}, errs.New(errs.ErrPersistence, "Couldn't record the return in the database.")
	}

	now := s.now()
	feeCents, _ := ComputeFee(rec.DueDate, now)

	if err := s.repo.CloseLoan(ctx, rec.ID, bookID, now); err != nil {
		return model.ReturnResult{}, errs.New(errs.ErrPersistence, "Couldn't record the return in the database.")
	}

	s.log.Info("book returned",
		zap.String("patron_id", patronID), zap.Int64("book_id", bookID),
		zap.Int64("fee_cents", feeCents))

	msg := "Return complete. No fee."
	if feeCents > 0 {
		msg = fmt.Sprintf("Return complete. Late fee: $%.2f.", centsToDollars(feeCents))
	}
	return model.ReturnResult{
		Message:   msg,
		FeeAmount: centsToDollars(feeCents),
	}, nil
}
