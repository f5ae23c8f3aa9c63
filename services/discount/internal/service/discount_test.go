package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eshopx/microservices/services/discount/internal/models"
	"github.com/eshopx/microservices/services/discount/internal/repo"
)

func newTestService(t *testing.T) *DiscountService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Coupon{}))

	return &DiscountService{Repo: &repo.GormRepo{DB: db}}
}

func TestDiscountService_GetDiscount_ReturnsStoredCoupon(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{
		ProductName: "Widget",
		Description: "Widget launch promo",
		Amount:      2,
	}))

	coupon, err := svc.GetDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", coupon.ProductName)
	assert.Equal(t, "Widget launch promo", coupon.Description)
	assert.Equal(t, 2.0, coupon.Amount)
}

func TestDiscountService_GetDiscount_SentinelWhenAbsent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	coupon, err := svc.GetDiscount(context.Background(), "Gadget")
	require.NoError(t, err)
	assert.Equal(t, "Gadget", coupon.ProductName)
	assert.Equal(t, NoDiscountDescription, coupon.Description)
	assert.Zero(t, coupon.Amount)
	assert.Zero(t, coupon.ID)
}

func TestDiscountService_GetDiscount_SentinelIsNotPersisted(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetDiscount(ctx, "Gadget")
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.Coupon{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDiscountService_CreateDiscount_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	err := svc.CreateDiscount(context.Background(), &models.Coupon{Amount: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDiscountService_CreateDiscount_AllowsDuplicates(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{ProductName: "Widget", Amount: 1}))
	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{ProductName: "Widget", Amount: 2}))

	// first match wins, which duplicate is undefined, but some coupon for the
	// product must come back
	coupon, err := svc.GetDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", coupon.ProductName)
	assert.NotEqual(t, NoDiscountDescription, coupon.Description)
}

func TestDiscountService_UpdateDiscount(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	coupon := &models.Coupon{ProductName: "Widget", Description: "old", Amount: 1}
	require.NoError(t, svc.CreateDiscount(ctx, coupon))

	coupon.Description = "new"
	coupon.Amount = 3
	require.NoError(t, svc.UpdateDiscount(ctx, coupon))

	got, err := svc.GetDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Description)
	assert.Equal(t, 3.0, got.Amount)
}

func TestDiscountService_UpdateDiscount_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	err := svc.UpdateDiscount(context.Background(), &models.Coupon{ID: 42, ProductName: "Widget"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscountService_DeleteDiscount(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{ProductName: "Widget", Amount: 1}))

	deleted, err := svc.DeleteDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.True(t, deleted)

	coupon, err := svc.GetDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.Equal(t, NoDiscountDescription, coupon.Description)
}

func TestDiscountService_DeleteDiscount_AbsentReturnsFalse(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	deleted, err := svc.DeleteDiscount(context.Background(), "NoSuchProduct")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDiscountService_DeleteDiscount_RemovesAllDuplicates(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{ProductName: "Widget", Amount: 1}))
	require.NoError(t, svc.CreateDiscount(ctx, &models.Coupon{ProductName: "Widget", Amount: 2}))

	deleted, err := svc.DeleteDiscount(ctx, "Widget")
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&models.Coupon{}).Count(&count).Error)
	assert.Zero(t, count)
}
