package service

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/lendkeep/library-service/library/internal/model"
	"github.com/lendkeep/library-service/library/internal/repository"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// PaymentGateway settles late fees with the external payment provider.
// Amounts are integer cents. A nil error with Success false is a gateway-side
// rejection; a non-nil error is a transport failure.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amountCents int64, description string) (model.GatewayResponse, error)
	Refund(ctx context.Context, transactionID string, amountCents int64) (model.GatewayResponse, error)
}

type Service struct {
	repo    repository.Repository
	gateway PaymentGateway
	log     *zap.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, gateway PaymentGateway, log *zap.Logger, ops ...Option) *Service {
	s := &Service{
		repo:    repo,
		gateway: gateway,
		log:     log,
		now:     time.Now,
	}
	for _, op := range ops {
		op(s)
	}
	return s
}

var (
	patronIDRe = regexp.MustCompile(`^\d{6}$`)
	isbnRe     = regexp.MustCompile(`^\d{13}$`)
)
