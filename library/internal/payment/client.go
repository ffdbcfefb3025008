package payment

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/config"
	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/library/internal/service"
	cb "github.com/lendkeep/library-service/pkg/circuit_breaker"
)

// Client talks to the payment gateway over JSON HTTP. A circuit breaker sits
// in front of every round trip so a dead gateway fails fast instead of
// stalling lending requests.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	breaker cb.CircuitBreaker
	cfg     config.PaymentHTTPServer
}

var _ service.PaymentGateway = (*Client)(nil)

func NewClient(log *zap.Logger, cfg config.PaymentHTTPServer) *Client {
	return &Client{
		log:     log.Named("payment"),
		client:  &http.Client{Timeout: time.Second * 10},
		breaker: cb.New(10, time.Second*30, 0.5, 2),
		cfg:     cfg,
	}
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type paymentRequest struct {
	PatronID    string  `json:"patronId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type refundRequest struct {
	Amount float64 `json:"amount"`
}

func (c *Client) ProcessPayment(ctx context.Context, patronID string, amountCents int64, description string) (model.GatewayResponse, error) {
	url := fmt.Sprintf("http://%s/api/v1/payments", net.JoinHostPort(c.cfg.Host, c.cfg.Port))
	body := paymentRequest{
		PatronID:    patronID,
		Amount:      float64(amountCents) / 100,
		Description: description,
	}
	return c.post(ctx, url, body)
}

func (c *Client) Refund(ctx context.Context, transactionID string, amountCents int64) (model.GatewayResponse, error) {
	url := fmt.Sprintf("http://%s/api/v1/payments/%s/refund", net.JoinHostPort(c.cfg.Host, c.cfg.Port), transactionID)
	return c.post(ctx, url, refundRequest{Amount: float64(amountCents) / 100})
}

func (c *Client) post(ctx context.Context, url string, body any) (model.GatewayResponse, error) {
	var out model.GatewayResponse
	err := c.breaker.Call(func() error {
		b := bytes.NewBuffer(nil)
		if err := jsonAPI.NewEncoder(b).Encode(body); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, b)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return errors.Errorf("payment gateway status %d", resp.StatusCode)
		}
		return jsonAPI.NewDecoder(resp.Body).Decode(&out)
	})
	if err != nil {
		c.log.Error("payment gateway call", zap.String("url", url), zap.Error(err))
		return model.GatewayResponse{}, err
	}
	return out, nil
}
