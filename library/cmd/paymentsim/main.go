package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	libconfig "github.com/lendkeep/library-service/library/config"
	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/library/internal/server"
	"github.com/lendkeep/library-service/pkg/logger"
	"github.com/lendkeep/library-service/pkg/validate"
)

// paymentsim stands in for the real payment provider in local and CI runs.
// It keeps captured charges in memory, so a restart forgets every transaction.

type config struct {
	Host string `envconfig:"PAYMENT_HTTP_HOST" default:"0.0.0.0"`
	Port string `envconfig:"PAYMENT_HTTP_PORT" default:"8081"`
}

// maxCharge mirrors the library's largest single-book late fee.
const maxCharge = 15.00

var patronAccountRe = regexp.MustCompile(`^\d{6}$`)

type paymentRequest struct {
	PatronID    string  `json:"patronId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type refundRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type gateway struct {
	log *zap.Logger

	mu      sync.Mutex
	charges map[string]float64
}

func newGateway(log *zap.Logger) *gateway {
	return &gateway{
		log:     log,
		charges: make(map[string]float64),
	}
}

func (g *gateway) newRouter() *echo.Echo {
	e := echo.New()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Validator = validate.NewCustomValidator()

	e.GET("/manage/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	api := e.Group("/api/v1")
	api.POST("/payments", g.processPayment)
	api.POST("/payments/:transactionId/refund", g.refund)
	return e
}

// processPayment captures a charge. Malformed requests get a 400, business
// rejections still answer 200 with success false, the way the provider does.
func (g *gateway) processPayment(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !patronAccountRe.MatchString(req.PatronID) {
		return c.JSON(http.StatusOK, model.GatewayResponse{
			Success: false,
			Message: "Invalid patron account",
		})
	}
	if req.Amount > maxCharge {
		return c.JSON(http.StatusOK, model.GatewayResponse{
			Success: false,
			Message: fmt.Sprintf("Amount $%.2f exceeds the single charge limit", req.Amount),
		})
	}

	txnID := "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	g.mu.Lock()
	g.charges[txnID] = req.Amount
	g.mu.Unlock()

	g.log.Info("payment captured",
		zap.String("transaction_id", txnID),
		zap.String("patron_id", req.PatronID),
		zap.Float64("amount", req.Amount),
		zap.String("description", req.Description))

	return c.JSON(http.StatusOK, model.GatewayResponse{
		Success:       true,
		TransactionID: txnID,
		Message:       fmt.Sprintf("Charged $%.2f", req.Amount),
	})
}

func (g *gateway) refund(c echo.Context) error {
	txnID := c.Param("transactionId")
	var req refundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	g.mu.Lock()
	charged, ok := g.charges[txnID]
	if ok && req.Amount <= charged {
		g.charges[txnID] = charged - req.Amount
	}
	g.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusOK, model.GatewayResponse{
			Success: false,
			Message: "Transaction not found",
		})
	}
	if req.Amount > charged {
		return c.JSON(http.StatusOK, model.GatewayResponse{
			Success: false,
			Message: "Refund exceeds the captured amount",
		})
	}

	g.log.Info("refund issued",
		zap.String("transaction_id", txnID), zap.Float64("amount", req.Amount))

	return c.JSON(http.StatusOK, model.GatewayResponse{
		Success: true,
		Message: fmt.Sprintf("Refund of $%.2f processed successfully", req.Amount),
	})
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel}, "paymentsim")
	defer func() { _ = log.Sync() }()

	g := newGateway(log)
	srv := server.NewServer(libconfig.HTTPServer{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}, g.newRouter())

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server run", zap.Error(err))
		}
	}()
	log.Info("payment simulator started", zap.String("host", cfg.Host), zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Error("server stop", zap.Error(err))
	}
}
