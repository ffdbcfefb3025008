package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lendkeep/library-service/library/internal/model"
)

// Report assembles the patron's active loans, the summed late fee and the
// full borrow history. It never fails: a bad patron id or a store fault
// degrades to a zeroed report with an explanatory status.
func (s *Service) Report(ctx context.Context, patronID string) model.PatronStatusReport {
	report := model.PatronStatusReport{
		PatronID:    patronID,
		BorrowedNow: []model.ActiveLoan{},
		LateFees:    "0.00",
		History:     []model.HistoryEntry{},
		Status:      model.ReportStatusOK,
	}
	if !patronIDRe.MatchString(patronID) {
		report.Status = model.ReportStatusInvalidPatron
		return report
	}

	var (
		active  []model.ActiveLoan
		history []model.HistoryEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.GetActiveLoans(gctx, patronID)
		if err != nil {
			return err
		}
		active = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.GetBorrowHistory(gctx, patronID)
		if err != nil {
			return err
		}
		history = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("patron report", zap.String("patron_id", patronID), zap.Error(err))
		report.Status = model.ReportStatusFailed
		return report
	}

	now := s.now()
	var totalCents int64
	for i := range active {
		cents, _ := ComputeFee(active[i].DueDate, now)
		totalCents += cents
		active[i].IsOverdue = now.After(active[i].DueDate)
	}

	if active != nil {
		report.BorrowedNow = active
	}
	report.ActiveCount = len(report.BorrowedNow)
	report.LateFees = fmt.Sprintf("%.2f", centsToDollars(totalCents))
	if history != nil {
		report.History = history
	}
	return report
}
