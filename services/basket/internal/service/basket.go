package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eshopx/microservices/services/basket/internal/discount"
	"github.com/eshopx/microservices/services/basket/internal/models"
	"github.com/eshopx/microservices/services/basket/internal/repo"
	"github.com/eshopx/microservices/services/basket/internal/transport"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type DiscountLookup interface {
	GetDiscount(ctx context.Context, productName string) (*discount.Coupon, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, key string, event any) error
}

// BasketCheckoutEvent is published to the checkout topic for the ordering
// service to pick up.
type BasketCheckoutEvent struct {
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

type BasketService struct {
	Repo     repo.BasketRepository
	Discount DiscountLookup
	Events   EventPublisher
}

func (s *BasketService) GetBasket(ctx context.Context, userName string) (*models.ShoppingCart, error) {
	if userName == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}

	cart, err := s.Repo.GetBasket(ctx, userName)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("basket for %q: %w", userName, ErrNotFound)
	}
	return cart, err
}

// StoreBasket runs the pricing workflow: one discount lookup per line item,
// issued sequentially in item order, each lookup's amount subtracted from the
// item price. The discounted price is not floored at zero. Any lookup failure
// aborts the whole operation before anything is persisted.
func (s *BasketService) StoreBasket(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	if cart == nil || cart.UserName == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("basket must contain at least one item: %w", ErrValidation)
	}

	for i := range cart.Items {
		coupon, err := s.Discount.GetDiscount(ctx, cart.Items[i].ProductName)
		if err != nil {
			return nil, fmt.Errorf("discount lookup for %q: %w", cart.Items[i].ProductName, err)
		}
		cart.Items[i].Price -= coupon.Amount
	}

	return s.Repo.StoreBasket(ctx, cart)
}

func (s *BasketService) DeleteBasket(ctx context.Context, userName string) (bool, error) {
	if userName == "" {
		return false, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}

	return s.Repo.DeleteBasket(ctx, userName)
}

// Checkout publishes a BasketCheckoutEvent for the stored basket and then
// removes it. The basket must exist.
func (s *BasketService) Checkout(ctx context.Context, req transport.CheckoutRequest) (*BasketCheckoutEvent, error) {
	if req.UserName == "" {
		return nil, fmt.Errorf("user name must not be empty: %w", ErrValidation)
	}

	cart, err := s.Repo.GetBasket(ctx, req.UserName)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("basket for %q: %w", req.UserName, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	event := &BasketCheckoutEvent{
		EventID:      uuid.NewString(),
		UserName:     cart.UserName,
		TotalPrice:   cart.TotalPrice(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		AddressLine:  req.AddressLine,
		Country:      req.Country,
		ZipCode:      req.ZipCode,
		CardNumber:   req.CardNumber,
		Expiration:   req.Expiration,
	}

	if err := s.Events.PublishEvent(ctx, event.UserName, event); err != nil {
		return nil, fmt.Errorf("publish checkout event: %w", err)
	}

	if _, err := s.Repo.DeleteBasket(ctx, req.UserName); err != nil {
		return nil, err
	}
	return event, nil
}
