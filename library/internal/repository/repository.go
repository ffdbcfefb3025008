package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, bookID int64) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateLoan(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) (model.BorrowRecord, error)
	CloseLoan(ctx context.Context, recordID, bookID int64, returnDate time.Time) error
	GetActiveLoan(ctx context.Context, patronID string, bookID int64) (model.BorrowRecord, error)
	GetActiveLoans(ctx context.Context, patronID string) ([]model.ActiveLoan, error)
	GetBorrowHistory(ctx context.Context, patronID string) ([]model.HistoryEntry, error)
	CountActiveLoans(ctx context.Context, patronID string) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Book{}, errs.ErrAlreadyExists
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}

	return created, nil
}

func (r *repository) GetBook(ctx context.Context, bookID int64) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}

	return book, nil
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		Where(sq.Eq{"isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}

	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, _, err := qb.Select("id", "title", "author", "isbn", "total_copies", "available_copies").
		From(booksTableName).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query); err != nil {
		return nil, err
	}

	return books, nil
}

// CreateLoan inserts the borrow record and takes one copy off the shelf in a
// single transaction. errs.ErrUnavailable means no copy was left to take.
func (r *repository) CreateLoan(ctx context.Context, patronID string, bookID int64, borrowDate, dueDate time.Time) (model.BorrowRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	defer func() { _ = tx.Rollback() }()

	const take = `
update books
    set available_copies = available_copies - 1
where id = $1 and available_copies > 0`
	res, err := tx.ExecContext(ctx, take, bookID)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	if n == 0 {
		return model.BorrowRecord{}, errs.ErrUnavailable
	}

	query, args, err := qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(patronID, bookID, borrowDate, dueDate).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var rec model.BorrowRecord
	if err := tx.GetContext(ctx, &rec, query, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return model.BorrowRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// CloseLoan stamps the return date and puts the copy back in a single
// transaction. errs.ErrNotFound means the record was not active anymore.
func (r *repository) CloseLoan(ctx context.Context, recordID, bookID int64, returnDate time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const stamp = `
update borrow_records
    set return_date = $2
where id = $1 and return_date is null`
	res, err := tx.ExecContext(ctx, stamp, recordID, returnDate)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}

	const put = `
update books
    set available_copies = available_copies + 1
where id = $1`
	if _, err := tx.ExecContext(ctx, put, bookID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) GetActiveLoan(ctx context.Context, patronID string, bookID int64) (model.BorrowRecord, error) {
	query, args, err := qb.Select("id", "patron_id", "book_id", "borrow_date", "due_date", "return_date").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		Where(sq.Eq{"book_id": bookID}).
		Where("return_date is null").
		OrderBy("borrow_date desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}

	return rec, nil
}

func (r *repository) GetActiveLoans(ctx context.Context, patronID string) ([]model.ActiveLoan, error) {
	query, args, err := qb.Select("r.book_id", "b.title", "r.borrow_date", "r.due_date").
		From(borrowRecordsTableName + " r").
		Join(booksTableName + " b on b.id = r.book_id").
		Where(sq.Eq{"r.patron_id": patronID}).
		Where("r.return_date is null").
		OrderBy("r.borrow_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.ActiveLoan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *repository) GetBorrowHistory(ctx context.Context, patronID string) ([]model.HistoryEntry, error) {
	query, args, err := qb.Select("r.book_id", "b.title", "r.borrow_date", "r.due_date", "r.return_date").
		From(borrowRecordsTableName + " r").
		Join(booksTableName + " b on b.id = r.book_id").
		Where(sq.Eq{"r.patron_id": patronID}).
		OrderBy("r.borrow_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var history []model.HistoryEntry
	if err := r.db.SelectContext(ctx, &history, query, args...); err != nil {
		return nil, err
	}

	return history, nil
}

func (r *repository) CountActiveLoans(ctx context.Context, patronID string) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		Where("return_date is null").
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
