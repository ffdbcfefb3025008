package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
)

const txnIDPrefix = "txn_"

// PayFee settles the patron's current late fee on the book through the
// payment gateway. The fee is recomputed here, never taken from the caller.
func (s *Service) PayFee(ctx context.Context, patronID string, bookID int64) (model.PaymentResult, error) {
	if !patronIDRe.MatchString(patronID) {
		return model.PaymentResult{}, errs.New(errs.ErrValidation, "Invalid patron ID. Must be exactly 6 digits.")
	}

	quote := s.GetFeeQuote(ctx, patronID, bookID)
	if quote.Status == model.FeeStatusFailed {
		return model.PaymentResult{}, errs.New(errs.ErrPersistence, "Unable to calculate late fees.")
	}
	amountCents := dollarsToCents(quote.FeeAmount)
	if amountCents <= 0 {
		return model.PaymentResult{}, errs.New(errs.ErrValidation, "No late fees to pay for this book.")
	}

	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.PaymentResult{}, errs.New(errs.ErrPersistence, "Unable to calculate late fees.")
	}

	resp, err := s.gateway.ProcessPayment(ctx, patronID, amountCents, fmt.Sprintf("Late fees for '%s'", book.Title))
	if err != nil {
		s.log.Error("process payment",
			zap.String("patron_id", patronID), zap.Int64("book_id", bookID), zap.Error(err))
		return model.PaymentResult{}, errs.New(errs.ErrGateway, fmt.Sprintf("Payment processing error: %v", err))
	}
	if !resp.Success {
		return model.PaymentResult{}, errs.New(errs.ErrDeclined, fmt.Sprintf("Payment failed: %s", resp.Message))
	}

	s.log.Info("late fee paid",
		zap.String("patron_id", patronID), zap.Int64("book_id", bookID),
		zap.String("transaction_id", resp.TransactionID), zap.Int64("amount_cents", amountCents))

	return model.PaymentResult{
		Message:       fmt.Sprintf("Payment successful! %s", resp.Message),
		TransactionID: resp.TransactionID,
		Amount:        quote.FeeAmount,
	}, nil
}

// Refund pushes money back for an earlier fee payment. The transaction id
// format and the amount bounds are checked before the gateway is contacted.
func (s *Service) Refund(ctx context.Context, transactionID string, amount float64) (model.RefundResult, error) {
	if !strings.HasPrefix(transactionID, txnIDPrefix) {
		return model.RefundResult{}, errs.New(errs.ErrValidation, "Invalid transaction ID.")
	}
	if amount <= 0 {
		return model.RefundResult{}, errs.New(errs.ErrValidation, "Refund amount must be greater than 0.")
	}
	if amount > centsToDollars(maxFeeCents) {
		return model.RefundResult{}, errs.New(errs.ErrValidation, "Refund amount exceeds maximum late fee.")
	}

	resp, err := s.gateway.Refund(ctx, transactionID, dollarsToCents(amount))
	if err != nil {
		s.log.Error("refund", zap.String("transaction_id", transactionID), zap.Error(err))
		return model.RefundResult{}, errs.New(errs.ErrGateway, fmt.Sprintf("Refund processing error: %v", err))
	}
	if !resp.Success {
		return model.RefundResult{}, errs.New(errs.ErrDeclined, fmt.Sprintf("Refund failed: %s", resp.Message))
	}

	s.log.Info("refund issued", zap.String("transaction_id", transactionID), zap.Float64("amount", amount))
	return model.RefundResult{Message: resp.Message}, nil
}
