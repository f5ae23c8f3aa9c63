package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/ordering/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), defaultPageSize)
	if size > maxPageSize {
		size = maxPageSize
	}
	offset := (page - 1) * size

	total, orders, err := h.Svc.ListOrders(ctx, offset, size)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": orders,
		"meta": map[string]any{
			"page":  page,
			"size":  size,
			"total": total,
		},
	})
}

func (h *OrderHTTP) GetOrdersByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.by_user")

	orders, err := h.Svc.GetOrdersByUser(ctx, c.Param("userName"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("get_orders_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "user name required")
		}
		l.Error("get_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get orders")
	}

	return c.JSON(http.StatusOK, orders)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
