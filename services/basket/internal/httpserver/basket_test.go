package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshopx/microservices/services/basket/internal/discount"
	"github.com/eshopx/microservices/services/basket/internal/models"
	"github.com/eshopx/microservices/services/basket/internal/repo"
	"github.com/eshopx/microservices/services/basket/internal/service"
	"github.com/eshopx/microservices/services/basket/internal/transport"
)

type memRepo struct {
	carts map[string]models.ShoppingCart
}

func (m *memRepo) GetBasket(_ context.Context, userName string) (*models.ShoppingCart, error) {
	cart, ok := m.carts[userName]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &cart, nil
}

func (m *memRepo) StoreBasket(_ context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	m.carts[cart.UserName] = *cart
	return cart, nil
}

func (m *memRepo) DeleteBasket(_ context.Context, userName string) (bool, error) {
	_, ok := m.carts[userName]
	delete(m.carts, userName)
	return ok, nil
}

type staticLookup struct {
	coupons map[string]float64
}

func (s *staticLookup) GetDiscount(_ context.Context, productName string) (*discount.Coupon, error) {
	return &discount.Coupon{ProductName: productName, Amount: s.coupons[productName]}, nil
}

type nopEvents struct{}

func (nopEvents) PublishEvent(context.Context, string, any) error { return nil }

func newTestEnv(coupons map[string]float64) (*echo.Echo, *memRepo) {
	baskets := &memRepo{carts: make(map[string]models.ShoppingCart)}
	svc := &service.BasketService{
		Repo:     baskets,
		Discount: &staticLookup{coupons: coupons},
		Events:   nopEvents{},
	}

	e := echo.New()
	Register(e, &Deps{BasketHandler: &BasketHTTP{Svc: svc}})
	return e, baskets
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStoreBasket_EndToEndPricing(t *testing.T) {
	t.Parallel()

	e, baskets := newTestEnv(map[string]float64{"Widget": 2})

	rec := doJSON(e, http.MethodPost, "/basket",
		`{"user_name":"alice","items":[{"product_name":"Widget","quantity":2,"price":10.00}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.StoreBasketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserName)

	persisted := baskets.carts["alice"]
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 8.0, persisted.Items[0].Price)
	assert.Equal(t, 16.0, persisted.TotalPrice())
}

func TestStoreBasket_NoCouponOnFile(t *testing.T) {
	t.Parallel()

	e, baskets := newTestEnv(nil)

	rec := doJSON(e, http.MethodPost, "/basket",
		`{"user_name":"bob","items":[{"product_name":"Gadget","quantity":1,"price":7.50}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	persisted := baskets.carts["bob"]
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 7.5, persisted.Items[0].Price)
	assert.Equal(t, 7.5, persisted.TotalPrice())
}

func TestStoreBasket_ValidationFailure(t *testing.T) {
	t.Parallel()

	e, _ := newTestEnv(nil)

	rec := doJSON(e, http.MethodPost, "/basket", `{"user_name":"","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBasket_ReturnsCartWithTotal(t *testing.T) {
	t.Parallel()

	e, baskets := newTestEnv(nil)
	baskets.carts["alice"] = models.ShoppingCart{
		UserName: "alice",
		Items:    []models.ShoppingCartItem{{ProductName: "Widget", Quantity: 2, Price: 8}},
	}

	rec := doJSON(e, http.MethodGet, "/basket/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserName)
	assert.Equal(t, 16.0, resp.TotalPrice)
}

func TestGetBasket_NotFound(t *testing.T) {
	t.Parallel()

	e, _ := newTestEnv(nil)

	rec := doJSON(e, http.MethodGet, "/basket/nobody", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var problem transport.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.NotEmpty(t, problem.Title)
}

func TestDeleteBasket_ReportsExistence(t *testing.T) {
	t.Parallel()

	e, baskets := newTestEnv(nil)
	baskets.carts["alice"] = models.ShoppingCart{UserName: "alice"}

	rec := doJSON(e, http.MethodDelete, "/basket/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.DeleteBasketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	rec = doJSON(e, http.MethodDelete, "/basket/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestCheckout_AcceptedAndBasketGone(t *testing.T) {
	t.Parallel()

	e, baskets := newTestEnv(nil)
	baskets.carts["alice"] = models.ShoppingCart{
		UserName: "alice",
		Items:    []models.ShoppingCartItem{{ProductName: "Widget", Quantity: 1, Price: 10}},
	}

	rec := doJSON(e, http.MethodPost, "/basket/checkout",
		`{"user_name":"alice","email_address":"alice@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotContains(t, baskets.carts, "alice")
}

func TestCheckout_MissingBasket(t *testing.T) {
	t.Parallel()

	e, _ := newTestEnv(nil)

	rec := doJSON(e, http.MethodPost, "/basket/checkout", `{"user_name":"nobody"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
