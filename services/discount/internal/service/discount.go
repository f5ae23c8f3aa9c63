package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eshopx/microservices/services/discount/internal/models"
	"github.com/eshopx/microservices/services/discount/internal/repo"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

// NoDiscountDescription is the description of the synthesized coupon returned
// when no row matches a product name. The sentinel is never persisted.
const NoDiscountDescription = "No Discount Available"

type DiscountService struct {
	Repo *repo.GormRepo
}

// GetDiscount looks a coupon up by exact product name. A missing coupon is not
// an error: the zero-amount sentinel comes back instead.
func (s *DiscountService) GetDiscount(ctx context.Context, productName string) (*models.Coupon, error) {
	coupon, err := s.Repo.GetCoupon(ctx, productName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Coupon{
			ProductName: productName,
			Description: NoDiscountDescription,
			Amount:      0,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

// CreateDiscount inserts unconditionally. No uniqueness check on product name,
// duplicate coupons for the same product are possible.
func (s *DiscountService) CreateDiscount(ctx context.Context, coupon *models.Coupon) error {
	if coupon.ProductName == "" {
		return fmt.Errorf("product name must not be empty: %w", ErrValidation)
	}

	return s.Repo.CreateCoupon(ctx, coupon)
}

func (s *DiscountService) UpdateDiscount(ctx context.Context, coupon *models.Coupon) error {
	if coupon.ProductName == "" {
		return fmt.Errorf("product name must not be empty: %w", ErrValidation)
	}
	if coupon.ID == 0 {
		return fmt.Errorf("coupon id required: %w", ErrValidation)
	}

	err := s.Repo.UpdateCoupon(ctx, coupon)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("coupon %d: %w", coupon.ID, ErrNotFound)
	}
	return err
}

// DeleteDiscount reports false when nothing matched, it is not an error.
func (s *DiscountService) DeleteDiscount(ctx context.Context, productName string) (bool, error) {
	deleted, err := s.Repo.DeleteCoupons(ctx, productName)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
