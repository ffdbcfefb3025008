package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/lendkeep/library-service/library/internal/model"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type client struct {
	baseURL string
	hc      *http.Client
}

// newClient resolves the service address: the --base-url flag wins, then
// LIBRARY_BASE_URL, then the local default.
func newClient(baseURL string) *client {
	if baseURL == "" {
		baseURL = os.Getenv("LIBRARY_BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b := bytes.NewBuffer(nil)
		if err := jsonAPI.NewEncoder(b).Encode(in); err != nil {
			return err
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var he struct {
			Message any `json:"message"`
		}
		if err := jsonAPI.NewDecoder(resp.Body).Decode(&he); err == nil && he.Message != nil {
			return errors.Errorf("%v", he.Message)
		}
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return jsonAPI.NewDecoder(resp.Body).Decode(out)
}

func (c *client) addBook(ctx context.Context, req model.AddBookRequest) (model.AddBookResult, error) {
	var res model.AddBookResult
	err := c.do(ctx, http.MethodPost, "/books", req, &res)
	return res, err
}

func (c *client) listBooks(ctx context.Context) ([]model.Book, error) {
	var res []model.Book
	err := c.do(ctx, http.MethodGet, "/books", nil, &res)
	return res, err
}

func (c *client) searchBooks(ctx context.Context, term, by string) ([]model.Book, error) {
	var res []model.Book
	q := url.Values{"term": {term}, "by": {by}}
	err := c.do(ctx, http.MethodGet, "/books/search?"+q.Encode(), nil, &res)
	return res, err
}

func (c *client) getBook(ctx context.Context, bookID int64) (model.Book, error) {
	var res model.Book
	err := c.do(ctx, http.MethodGet, "/books/"+strconv.FormatInt(bookID, 10), nil, &res)
	return res, err
}

func (c *client) borrow(ctx context.Context, bookID int64, patronID string) (model.BorrowResult, error) {
	var res model.BorrowResult
	path := fmt.Sprintf("/books/%d/borrow", bookID)
	err := c.do(ctx, http.MethodPost, path, model.BorrowRequest{PatronID: patronID}, &res)
	return res, err
}

func (c *client) returnBook(ctx context.Context, bookID int64, patronID string) (model.ReturnResult, error) {
	var res model.ReturnResult
	path := fmt.Sprintf("/books/%d/return", bookID)
	err := c.do(ctx, http.MethodPost, path, model.ReturnRequest{PatronID: patronID}, &res)
	return res, err
}

func (c *client) feeQuote(ctx context.Context, patronID string, bookID int64) (model.FeeQuote, error) {
	var res model.FeeQuote
	path := fmt.Sprintf("/patrons/%s/books/%d/fee", url.PathEscape(patronID), bookID)
	err := c.do(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

func (c *client) report(ctx context.Context, patronID string) (model.PatronStatusReport, error) {
	var res model.PatronStatusReport
	path := fmt.Sprintf("/patrons/%s/report", url.PathEscape(patronID))
	err := c.do(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

func (c *client) payFee(ctx context.Context, patronID string, bookID int64) (model.PaymentResult, error) {
	var res model.PaymentResult
	err := c.do(ctx, http.MethodPost, "/payments", model.PaymentRequest{PatronID: patronID, BookID: bookID}, &res)
	return res, err
}

func (c *client) refund(ctx context.Context, transactionID string, amount float64) (model.RefundResult, error) {
	var res model.RefundResult
	path := fmt.Sprintf("/payments/%s/refund", url.PathEscape(transactionID))
	err := c.do(ctx, http.MethodPost, path, model.RefundRequest{Amount: amount}, &res)
	return res, err
}

func printJSON(v any) error {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
