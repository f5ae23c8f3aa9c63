package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/ordering/internal/models"
	"github.com/eshopx/microservices/services/ordering/internal/repo"
)

var ErrValidation = errors.New("validation")

// CheckoutEvent mirrors the payload the basket service publishes on checkout.
type CheckoutEvent struct {
	EventID      string  `json:"event_id"`
	UserName     string  `json:"user_name"`
	TotalPrice   float64 `json:"total_price"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	EmailAddress string  `json:"email_address"`
	AddressLine  string  `json:"address_line"`
	Country      string  `json:"country"`
	ZipCode      string  `json:"zip_code"`
	CardNumber   string  `json:"card_number"`
	Expiration   string  `json:"expiration"`
}

type OrderService struct {
	Repo repo.OrderRepository
}

// CreateFromEvent turns a checkout event into an order row. Redelivered
// events are absorbed: the insert is keyed on the event id, so the second
// delivery of the same event creates nothing.
func (s *OrderService) CreateFromEvent(ctx context.Context, event *CheckoutEvent) (*models.Order, error) {
	if event.EventID == "" {
		return nil, fmt.Errorf("event id must not be empty: %w", ErrValidation)
	}
	if event.UserName == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}

	order := &models.Order{
		ID:           uuid.NewString(),
		EventID:      event.EventID,
		UserName:     event.UserName,
		TotalPrice:   event.TotalPrice,
		FirstName:    event.FirstName,
		LastName:     event.LastName,
		EmailAddress: event.EmailAddress,
		AddressLine:  event.AddressLine,
		Country:      event.Country,
		ZipCode:      event.ZipCode,
		CardNumber:   event.CardNumber,
		Expiration:   event.Expiration,
	}

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if !created {
		logging.FromContext(ctx).Info("duplicate checkout event skipped", "event_id", event.EventID)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, offset, limit int) (int64, []models.Order, error) {
	return s.Repo.ListOrders(ctx, offset, limit)
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userName string) ([]models.Order, error) {
	if userName == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}
	return s.Repo.GetOrdersByUser(ctx, userName)
}
