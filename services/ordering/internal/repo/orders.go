package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eshopx/microservices/services/ordering/internal/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) (created bool, err error)
	ListOrders(ctx context.Context, offset, limit int) (int64, []models.Order, error)
	GetOrdersByUser(ctx context.Context, userName string) ([]models.Order, error)
}

type GormRepo struct {
	DB *gorm.DB
}

// CreateOrder inserts the order unless a row with the same event id already
// exists. Duplicate deliveries of the same checkout event land here, so the
// insert reports whether it actually wrote anything.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(order)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, offset, limit int) (int64, []models.Order, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

func (r *GormRepo) GetOrdersByUser(ctx context.Context, userName string) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
