package handler

import (
	"net/http"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/errs"
	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/pkg/validate"
	_ "github.com/lendkeep/library-service/swagger"
)

type Handler struct {
	librarySvc LibraryService
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(librarySrv LibraryService, producer sarama.SyncProducer, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySrv,
		enqueuer:   NewEnqueuer(producer),
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books/:bookId/borrow", h.BorrowBook)
	api.POST("/books/:bookId/return", h.ReturnBook)

	api.GET("/patrons/:patronId/books/:bookId/fee", h.GetFee)
	api.GET("/patrons/:patronId/report", h.GetReport)

	api.POST("/payments", h.PayFee)
	api.POST("/payments/:transactionId/refund", h.Refund)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// AddBook godoc
// @Summary Add a book to the catalog
// @Tags books
// @Accept json
// @Param input body model.AddBookRequest true "book"
// @Success 201 {object} model.AddBookResult
// @Failure 400,409,500 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

// ListBooks godoc
// @Summary Full catalog in title order
// @Tags books
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// SearchBooks godoc
// @Summary Search the catalog
// @Tags books
// @Param term query string true "search term"
// @Param by query string true "title, author or isbn"
// @Success 200 {array} model.Book
// @Router /books/search [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	term := c.QueryParam("term")
	kind := model.SearchKind(c.QueryParam("by"))
	books, err := h.librarySvc.Search(c.Request().Context(), term, kind)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Fetch one book
// @Tags books
// @Param bookId path int true "book id"
// @Success 200 {object} model.Book
// @Failure 400,404 {object} echo.HTTPError
// @Router /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// BorrowBook godoc
// @Summary Borrow a copy
// @Tags lending
// @Accept json
// @Param bookId path int true "book id"
// @Param input body model.BorrowRequest true "patron"
// @Success 201 {object} model.BorrowResult
// @Failure 400,404,409,500 {object} echo.HTTPError
// @Router /books/{bookId}/borrow [post]
func (h *Handler) BorrowBook(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.Borrow(c.Request().Context(), req.PatronID, bookID)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(model.EventBorrowed, req.PatronID, bookID, res.Message)
	return c.JSON(http.StatusCreated, res)
}

// ReturnBook godoc
// @Summary Return a borrowed copy
// @Tags lending
// @Accept json
// @Param bookId path int true "book id"
// @Param input body model.ReturnRequest true "patron"
// @Success 200 {object} model.ReturnResult
// @Failure 400,404,500 {object} echo.HTTPError
// @Router /books/{bookId}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.Return(c.Request().Context(), req.PatronID, bookID)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(model.EventReturned, req.PatronID, bookID, res.Message)
	return c.JSON(http.StatusOK, res)
}

// GetFee godoc
// @Summary Late fee quote for an active loan
// @Tags lending
// @Param patronId path string true "patron id"
// @Param bookId path int true "book id"
// @Success 200 {object} model.FeeQuote
// @Router /patrons/{patronId}/books/{bookId}/fee [get]
func (h *Handler) GetFee(c echo.Context) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return err
	}
	quote := h.librarySvc.GetFeeQuote(c.Request().Context(), c.Param("patronId"), bookID)
	return c.JSON(http.StatusOK, quote)
}

// GetReport godoc
// @Summary Patron status report
// @Tags patrons
// @Param patronId path string true "patron id"
// @Success 200 {object} model.PatronStatusReport
// @Router /patrons/{patronId}/report [get]
func (h *Handler) GetReport(c echo.Context) error {
	report := h.librarySvc.Report(c.Request().Context(), c.Param("patronId"))
	return c.JSON(http.StatusOK, report)
}

// PayFee godoc
// @Summary Pay the late fee on a book
// @Tags payments
// @Accept json
// @Param input body model.PaymentRequest true "payment"
// @Success 200 {object} model.PaymentResult
// @Failure 400,402,500,502 {object} echo.HTTPError
// @Router /payments [post]
func (h *Handler) PayFee(c echo.Context) error {
	var req model.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.PayFee(c.Request().Context(), req.PatronID, req.BookID)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent(model.EventFeePaid, req.PatronID, req.BookID, res.Message)
	return c.JSON(http.StatusOK, res)
}

// Refund godoc
// @Summary Refund an earlier fee payment
// @Tags payments
// @Accept json
// @Param transactionId path string true "transaction id"
// @Param input body model.RefundRequest true "refund"
// @Success 200 {object} model.RefundResult
// @Failure 400,402,502 {object} echo.HTTPError
// @Router /payments/{transactionId}/refund [post]
func (h *Handler) Refund(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.Refund(c.Request().Context(), c.Param("transactionId"), req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func bookIDParam(c echo.Context) (int64, error) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	return bookID, nil
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrLimitExceeded):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrDeclined):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.Is(err, errs.ErrGateway):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
