package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
	repo_mocks "github.com/lendkeep/library-service/library/internal/repository/mocks"
	"github.com/lendkeep/library-service/library/internal/service"
)

func Test_Service_AddBook(t *testing.T) {
	t.Parallel()

	validReq := model.AddBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		ISBN:        "9780441013593",
		TotalCopies: 3,
	}

	type mockBehavior func(r *repo_mocks.MockRepository, req model.AddBookRequest)

	tests := []struct {
		name         string
		req          model.AddBookRequest
		mockBehavior mockBehavior
		want         model.AddBookResult
		wantErrKind  error
		wantErrMsg   string
	}{
		{
			name: "ok",
			req:  validReq,
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {
				r.EXPECT().GetBookByISBN(gomock.Any(), req.ISBN).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().CreateBook(gomock.Any(), model.Book{
					Title:           req.Title,
					Author:          req.Author,
					ISBN:            req.ISBN,
					TotalCopies:     req.TotalCopies,
					AvailableCopies: req.TotalCopies,
				}).Return(model.Book{
					ID:              1,
					Title:           req.Title,
					Author:          req.Author,
					ISBN:            req.ISBN,
					TotalCopies:     req.TotalCopies,
					AvailableCopies: req.TotalCopies,
				}, nil)
			},
			want: model.AddBookResult{
				Message: `Book "Dune" has been successfully added to the catalog.`,
				Book: model.Book{
					ID:              1,
					Title:           "Dune",
					Author:          "Frank Herbert",
					ISBN:            "9780441013593",
					TotalCopies:     3,
					AvailableCopies: 3,
				},
			},
		},
		{
			name:         "title required",
			req:          model.AddBookRequest{Title: "  ", Author: "a", ISBN: "9780441013593", TotalCopies: 1},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "Title is required.",
		},
		{
			name: "title too long",
			req: model.AddBookRequest{
				Title: strings.Repeat("t", 201), Author: "a", ISBN: "9780441013593", TotalCopies: 1,
			},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "Title must be less than 200 characters.",
		},
		{
			name:         "author required",
			req:          model.AddBookRequest{Title: "t", ISBN: "9780441013593", TotalCopies: 1},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "Author is required.",
		},
		{
			name: "author too long",
			req: model.AddBookRequest{
				Title: "t", Author: strings.Repeat("a", 101), ISBN: "9780441013593", TotalCopies: 1,
			},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "Author must be less than 100 characters.",
		},
		{
			name:         "isbn too short",
			req:          model.AddBookRequest{Title: "t", Author: "a", ISBN: "978044101359", TotalCopies: 1},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "ISBN must be exactly 13 digits.",
		},
		{
			name:         "isbn with letters",
			req:          model.AddBookRequest{Title: "t", Author: "a", ISBN: "97804410135X3", TotalCopies: 1},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "ISBN must be exactly 13 digits.",
		},
		{
			name:         "zero copies",
			req:          model.AddBookRequest{Title: "t", Author: "a", ISBN: "9780441013593", TotalCopies: 0},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {},
			wantErrKind:  errs.ErrValidation,
			wantErrMsg:   "Total copies must be a positive integer.",
		},
		{
			name: "duplicate isbn",
			req:  validReq,
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {
				r.EXPECT().GetBookByISBN(gomock.Any(), req.ISBN).
					Return(model.Book{ID: 42, ISBN: req.ISBN}, nil)
			},
			wantErrKind: errs.ErrAlreadyExists,
			wantErrMsg:  "A book with this ISBN already exists.",
		},
		{
			name: "duplicate isbn lost race on insert",
			req:  validReq,
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {
				r.EXPECT().GetBookByISBN(gomock.Any(), req.ISBN).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					Return(model.Book{}, errs.ErrAlreadyExists)
			},
			wantErrKind: errs.ErrAlreadyExists,
			wantErrMsg:  "A book with this ISBN already exists.",
		},
		{
			name: "store fault on lookup",
			req:  validReq,
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {
				r.EXPECT().GetBookByISBN(gomock.Any(), req.ISBN).
					Return(model.Book{}, errors.New("connection reset"))
			},
			wantErrKind: errs.ErrPersistence,
			wantErrMsg:  "Database error occurred while adding the book.",
		},
		{
			name: "store fault on insert",
			req:  validReq,
			mockBehavior: func(r *repo_mocks.MockRepository, req model.AddBookRequest) {
				r.EXPECT().GetBookByISBN(gomock.Any(), req.ISBN).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					Return(model.Book{}, errors.New("connection reset"))
			},
			wantErrKind: errs.ErrPersistence,
			wantErrMsg:  "Database error occurred while adding the book.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)
			svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

			got, err := svc.AddBook(context.Background(), tt.req)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErrKind)
				require.EqualError(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Service_GetBook(t *testing.T) {
	t.Parallel()

	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		bookID       int64
		mockBehavior mockBehavior
		want         model.Book
		wantErrKind  error
		wantErrMsg   string
	}{
		{
			name:   "ok",
			bookID: 1,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), int64(1)).
					Return(model.Book{ID: 1, Title: "Dune"}, nil)
			},
			want: model.Book{ID: 1, Title: "Dune"},
		},
		{
			name:   "not found",
			bookID: 99,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), int64(99)).
					Return(model.Book{}, errs.ErrNotFound)
			},
			wantErrKind: errs.ErrNotFound,
			wantErrMsg:  "Book not found.",
		},
		{
			name:   "store fault",
			bookID: 1,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), int64(1)).
					Return(model.Book{}, errors.New("connection reset"))
			},
			wantErrKind: errs.ErrPersistence,
			wantErrMsg:  "Database error occurred while fetching the book.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)
			svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

			got, err := svc.GetBook(context.Background(), tt.bookID)
			if tt.wantErrMsg != "" {
				require.ErrorIs(t, err, tt.wantErrKind)
				require.EqualError(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Service_ListBooks_EmptyCatalog(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()

	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().ListBooks(gomock.Any()).Return(nil, nil)
	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

	got, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func Test_Service_Search(t *testing.T) {
	t.Parallel()

	catalog := []model.Book{
		{ID: 1, Title: "A Thousand and One Nights", Author: "Anonymous", ISBN: "9780140449389"},
		{ID: 2, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593"},
		{ID: 3, Title: "Night Watch", Author: "Terry Pratchett", ISBN: "9780060013127"},
	}

	type args struct {
		term string
		kind model.SearchKind
	}
	type mockBehavior func(r *repo_mocks.MockRepository, a args)

	tests := []struct {
		name         string
		args         args
		mockBehavior mockBehavior
		want         []model.Book
		wantErrMsg   string
	}{
		{
			name: "title match ignores case",
			args: args{term: "nIgHt", kind: model.SearchByTitle},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().ListBooks(gomock.Any()).Return(catalog, nil)
			},
			want: []model.Book{catalog[0], catalog[2]},
		},
		{
			name: "author match",
			args: args{term: "herbert", kind: model.SearchByAuthor},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().ListBooks(gomock.Any()).Return(catalog, nil)
			},
			want: []model.Book{catalog[1]},
		},
		{
			name: "title match without hits",
			args: args{term: "zanzibar", kind: model.SearchByTitle},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().ListBooks(gomock.Any()).Return(catalog, nil)
			},
			want: []model.Book{},
		},
		{
			name: "isbn exact match",
			args: args{term: "9780441013593", kind: model.SearchByISBN},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().GetBookByISBN(gomock.Any(), a.term).Return(catalog[1], nil)
			},
			want: []model.Book{catalog[1]},
		},
		{
			name:         "twelve digit isbn never reaches the store",
			args:         args{term: "978044101359", kind: model.SearchByISBN},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {},
			want:         []model.Book{},
		},
		{
			name: "isbn not in catalog",
			args: args{term: "9999999999999", kind: model.SearchByISBN},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().GetBookByISBN(gomock.Any(), a.term).
					Return(model.Book{}, errs.ErrNotFound)
			},
			want: []model.Book{},
		},
		{
			name:         "blank term",
			args:         args{term: "   ", kind: model.SearchByTitle},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {},
			want:         []model.Book{},
		},
		{
			name:         "unknown kind",
			args:         args{term: "dune", kind: model.SearchKind("publisher")},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {},
			want:         []model.Book{},
		},
		{
			name: "store fault",
			args: args{term: "dune", kind: model.SearchByTitle},
			mockBehavior: func(r *repo_mocks.MockRepository, a args) {
				r.EXPECT().ListBooks(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErrMsg: "Database error occurred while searching the catalog.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.args)
			svc := service.NewService(repo, nil, zap.NewExample().Named("test"))

			got, err := svc.Search(context.Background(), tt.args.term, tt.args.kind)
			if tt.wantErrMsg != "" {
				require.ErrorIs(t, err, errs.ErrPersistence)
				require.EqualError(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
