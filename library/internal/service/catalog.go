package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
)

func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest) (model.AddBookResult, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "Title is required.")
	}
	if len(req.Title) > 200 {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "Title must be less than 200 characters.")
	}
	if strings.TrimSpace(req.Author) == "" {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "Author is required.")
	}
	if len(req.Author) > 100 {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "Author must be less than 100 characters.")
	}
	if !isbnRe.MatchString(req.ISBN) {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "ISBN must be exactly 13 digits.")
	}
	if req.TotalCopies < 1 {
		return model.AddBookResult{}, errs.New(errs.ErrValidation, "Total copies must be a positive integer.")
	}

	if _, err := s.repo.GetBookByISBN(ctx, req.ISBN); err == nil {
		return model.AddBookResult{}, errs.New(errs.ErrAlreadyExists, "A book with this ISBN already exists.")
	} else if !errors.Is(err, errs.ErrNotFound) {
		s.log.Error("add book: isbn lookup", zap.String("isbn", req.ISBN), zap.Error(err))
		return model.AddBookResult{}, errs.New(errs.ErrPersistence, "Database error occurred while adding the book.")
	}

	created, err := s.repo.CreateBook(ctx, model.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	})
	if err != nil {
		// the unique index still guards against a concurrent insert
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.AddBookResult{}, errs.New(errs.ErrAlreadyExists, "A book with this ISBN already exists.")
		}
		s.log.Error("add book: insert", zap.String("isbn", req.ISBN), zap.Error(err))
		return model.AddBookResult{}, errs.New(errs.ErrPersistence, "Database error occurred while adding the book.")
	}

	s.log.Info("book added", zap.Int64("book_id", created.ID), zap.String("isbn", created.ISBN))
	return model.AddBookResult{
		Message: fmt.Sprintf("Book %q has been successfully added to the catalog.", created.Title),
		Book:    created,
	}, nil
}

func (s *Service) GetBook(ctx context.Context, bookID int64) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.New(errs.ErrNotFound, "Book not found.")
		}
		return model.Book{}, errs.New(errs.ErrPersistence, "Database error occurred while fetching the book.")
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, errs.New(errs.ErrPersistence, "Database error occurred while listing the catalog.")
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

// Search matches the catalog by title, author or isbn. A blank term or an
// unknown kind yields an empty result, not an error. ISBN search takes the
// full 13 digits only and returns at most one row, title and author search
// is a case-insensitive substring match over the whole catalog.
func (s *Service) Search(ctx context.Context, term string, kind model.SearchKind) ([]model.Book, error) {
	if strings.TrimSpace(term) == "" {
		return []model.Book{}, nil
	}

	switch kind {
	case model.SearchByISBN:
		if !isbnRe.MatchString(term) {
			return []model.Book{}, nil
		}
		book, err := s.repo.GetBookByISBN(ctx, term)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return []model.Book{}, nil
			}
			return nil, errs.New(errs.ErrPersistence, "Database error occurred while searching the catalog.")
		}
		return []model.Book{book}, nil

	case model.SearchByTitle, model.SearchByAuthor:
		books, err := s.repo.ListBooks(ctx)
		if err != nil {
			return nil, errs.New(errs.ErrPersistence, "Database error occurred while searching the catalog.")
		}
		needle := strings.ToLower(term)
		matched := make([]model.Book, 0, len(books))
		for _, b := range books {
			hay := b.Title
			if kind == model.SearchByAuthor {
				hay = b.Author
			}
			if strings.Contains(strings.ToLower(hay), needle) {
				matched = append(matched, b)
			}
		}
		return matched, nil

	default:
		return []model.Book{}, nil
	}
}
