package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/eshopx/microservices/services/discount/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// GetCoupon returns the first coupon matching productName. Duplicate product
// names are allowed, which duplicate comes back is up to the database.
func (r *GormRepo) GetCoupon(ctx context.Context, productName string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).Where("product_name = ?", productName).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) GetCouponByID(ctx context.Context, id int32) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	return r.DB.WithContext(ctx).Create(coupon).Error
}

func (r *GormRepo) UpdateCoupon(ctx context.Context, coupon *models.Coupon) error {
	res := r.DB.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", coupon.ID).Updates(map[string]any{
		"product_name": coupon.ProductName,
		"description":  coupon.Description,
		"amount":       coupon.Amount,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCoupons removes every coupon for productName and reports how many
// rows went away.
func (r *GormRepo) DeleteCoupons(ctx context.Context, productName string) (int64, error) {
	res := r.DB.WithContext(ctx).Where("product_name = ?", productName).Delete(&models.Coupon{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
