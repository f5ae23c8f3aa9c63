package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eshopx/microservices/services/ordering/internal/models"
	"github.com/eshopx/microservices/services/ordering/internal/repo"
)

func newTestService(t *testing.T) *OrderService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))

	return &OrderService{Repo: &repo.GormRepo{DB: db}}
}

func checkoutEvent(eventID, userName string, total float64) *CheckoutEvent {
	return &CheckoutEvent{
		EventID:      eventID,
		UserName:     userName,
		TotalPrice:   total,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
		AddressLine:  "12 Analytical St",
		Country:      "UK",
		ZipCode:      "SW1",
	}
}

func TestOrderService_CreateFromEvent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	order, err := svc.CreateFromEvent(ctx, checkoutEvent("evt-1", "alice", 42.5))
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	orders, err := svc.GetOrdersByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "evt-1", orders[0].EventID)
	assert.Equal(t, 42.5, orders[0].TotalPrice)
	assert.Equal(t, "Ada", orders[0].FirstName)
}

func TestOrderService_CreateFromEvent_IdempotentOnEventID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateFromEvent(ctx, checkoutEvent("evt-1", "alice", 10))
	require.NoError(t, err)

	// redelivery of the same event must not create a second order
	_, err = svc.CreateFromEvent(ctx, checkoutEvent("evt-1", "alice", 10))
	require.NoError(t, err)

	orders, err := svc.GetOrdersByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_CreateFromEvent_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		event *CheckoutEvent
	}{
		{"missing event id", checkoutEvent("", "alice", 10)},
		{"missing user name", checkoutEvent("evt-1", "", 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateFromEvent(ctx, tc.event)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestOrderService_ListOrders_Paged(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"evt-1", "evt-2", "evt-3"} {
		_, err := svc.CreateFromEvent(ctx, checkoutEvent(id, "alice", 10))
		require.NoError(t, err)
	}

	total, orders, err := svc.ListOrders(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orders, 2)

	total, orders, err = svc.ListOrders(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orders, 1)
}

func TestOrderService_GetOrdersByUser_RequiresUserName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.GetOrdersByUser(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_GetOrdersByUser_FiltersByUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateFromEvent(ctx, checkoutEvent("evt-1", "alice", 10))
	require.NoError(t, err)
	_, err = svc.CreateFromEvent(ctx, checkoutEvent("evt-2", "bob", 20))
	require.NoError(t, err)

	orders, err := svc.GetOrdersByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "bob", orders[0].UserName)
}
