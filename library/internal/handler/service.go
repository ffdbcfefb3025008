package handler

import (
	"context"

	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	AddBook(ctx context.Context, req model.AddBookRequest) (model.AddBookResult, error)
	GetBook(ctx context.Context, bookID int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	Search(ctx context.Context, term string, kind model.SearchKind) ([]model.Book, error)
	Borrow(ctx context.Context, patronID string, bookID int64) (model.BorrowResult, error)
	Return(ctx context.Context, patronID string, bookID int64) (model.ReturnResult, error)
	GetFeeQuote(ctx context.Context, patronID string, bookID int64) model.FeeQuote
	Report(ctx context.Context, patronID string) model.PatronStatusReport
	PayFee(ctx context.Context, patronID string, bookID int64) (model.PaymentResult, error)
	Refund(ctx context.Context, transactionID string, amount float64) (model.RefundResult, error)
}

var _ LibraryService = (*service.Service)(nil)
