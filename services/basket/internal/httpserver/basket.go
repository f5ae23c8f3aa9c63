package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/basket/internal/models"
	"github.com/eshopx/microservices/services/basket/internal/service"
	"github.com/eshopx/microservices/services/basket/internal/transport"
)

type BasketHTTP struct {
	Svc *service.BasketService
}

func (h *BasketHTTP) GetBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.get")

	userName := c.Param("userName")

	cart, err := h.Svc.GetBasket(ctx, userName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("get_basket_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"user_name": "required"})
		case errors.Is(err, service.ErrNotFound):
			l.Warn("get_basket_not_found", "status", 404, "user_name", userName)
			return c.JSON(http.StatusNotFound, transport.Problem{
				Title:  "basket not found",
				Status: http.StatusNotFound,
				Detail: "no basket stored for " + userName,
			})
		default:
			l.Error("get_basket_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, internalProblem())
		}
	}

	return c.JSON(http.StatusOK, transport.CartResponse{
		UserName:   cart.UserName,
		Items:      cart.Items,
		TotalPrice: cart.TotalPrice(),
	})
}

func (h *BasketHTTP) StoreBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.store")

	var req transport.StoreBasketRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("store_basket_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cart := &models.ShoppingCart{
		UserName: req.UserName,
		Items:    req.Items,
	}

	stored, err := h.Svc.StoreBasket(ctx, cart)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("store_basket_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		l.Error("store_basket_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, internalProblem())
	}

	l.Info("basket stored", "user_name", stored.UserName, "items", len(stored.Items))
	return c.JSON(http.StatusCreated, transport.StoreBasketResponse{UserName: stored.UserName})
}

func (h *BasketHTTP) DeleteBasket(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.delete")

	userName := c.Param("userName")

	existed, err := h.Svc.DeleteBasket(ctx, userName)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("delete_basket_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"user_name": "required"})
		}
		l.Error("delete_basket_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, internalProblem())
	}

	l.Info("basket deleted", "user_name", userName, "existed", existed)
	return c.JSON(http.StatusOK, transport.DeleteBasketResponse{Success: existed})
}

func (h *BasketHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "basket.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	event, err := h.Svc.Checkout(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("checkout_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, map[string]string{"user_name": "required"})
		case errors.Is(err, service.ErrNotFound):
			l.Warn("checkout_not_found", "status", 404, "user_name", req.UserName)
			return c.JSON(http.StatusNotFound, transport.Problem{
				Title:  "basket not found",
				Status: http.StatusNotFound,
				Detail: "no basket stored for " + req.UserName,
			})
		default:
			l.Error("checkout_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, internalProblem())
		}
	}

	l.Info("basket checked out", "user_name", event.UserName, "event_id", event.EventID, "total_price", event.TotalPrice)
	return c.NoContent(http.StatusAccepted)
}

func internalProblem() transport.Problem {
	return transport.Problem{
		Title:  "internal server error",
		Status: http.StatusInternalServerError,
		Detail: "the request could not be processed",
	}
}
