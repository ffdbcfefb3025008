package model

import "time"

type Book struct {
	ID              int64  `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

// BorrowRecord is one loan. A nil ReturnDate means the loan is active.
type BorrowRecord struct {
	ID         int64      `json:"id" db:"id"`
	PatronID   string     `json:"patronId" db:"patron_id"`
	BookID     int64      `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
}

type SearchKind string

const (
	SearchByTitle  SearchKind = "title"
	SearchByAuthor SearchKind = "author"
	SearchByISBN   SearchKind = "isbn"
)

// FeeQuote is computed on demand and never persisted.
type FeeQuote struct {
	FeeAmount   float64 `json:"feeAmount"`
	DaysOverdue int     `json:"daysOverdue"`
	Status      string  `json:"status"`
}

const (
	FeeStatusOnTime        = "on time"
	FeeStatusOverdue       = "overdue"
	FeeStatusInvalidPatron = "Invalid patron ID"
	FeeStatusBookNotFound  = "Book not found"
	FeeStatusNoActiveLoan  = "No active loan"
	FeeStatusFailed        = "Unable to calculate late fees"
)

type ActiveLoan struct {
	BookID     int64     `json:"bookId" db:"book_id"`
	Title      string    `json:"title" db:"title"`
	BorrowDate time.Time `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time `json:"dueDate" db:"due_date"`
	IsOverdue  bool      `json:"isOverdue" db:"-"`
}

type HistoryEntry struct {
	BookID     int64      `json:"bookId" db:"book_id"`
	Title      string     `json:"title" db:"title"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
}

type PatronStatusReport struct {
	PatronID    string         `json:"patronId"`
	BorrowedNow []ActiveLoan   `json:"borrowedNow"`
	ActiveCount int            `json:"activeCount"`
	LateFees    string         `json:"lateFees"`
	History     []HistoryEntry `json:"history"`
	Status      string         `json:"status"`
}

const (
	ReportStatusOK            = "ok"
	ReportStatusInvalidPatron = "Invalid patron ID"
	ReportStatusFailed        = "Unable to build report"
)

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"totalCopies"`
}

type AddBookResult struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

type BorrowRequest struct {
	PatronID string `json:"patronId"`
}

type BorrowResult struct {
	Message  string `json:"message"`
	DueDate  string `json:"dueDate"`
	RecordID int64  `json:"recordId"`
}

type ReturnRequest struct {
	PatronID string `json:"patronId"`
}

type ReturnResult struct {
	Message   string  `json:"message"`
	FeeAmount float64 `json:"feeAmount"`
}

type PaymentRequest struct {
	PatronID string `json:"patronId"`
	BookID   int64  `json:"bookId"`
}

type PaymentResult struct {
	Message       string  `json:"message"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

type RefundRequest struct {
	Amount float64 `json:"amount"`
}

type RefundResult struct {
	Message string `json:"message"`
}

// GatewayResponse is the payment provider's verdict. Success false is a
// business rejection, transport failures surface as errors instead.
type GatewayResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
}

const (
	EventBorrowed = "BORROWED"
	EventReturned = "RETURNED"
	EventFeePaid  = "FEE_PAID"
)

type LendingEvent struct {
	EventType  string    `json:"eventType"`
	PatronID   string    `json:"patronId"`
	BookID     int64     `json:"bookId"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}
