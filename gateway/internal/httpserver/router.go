package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eshopx/microservices/gateway/internal/middleware"
)

type Deps struct {
	CatalogURL string
	BasketURL  string
	OrderURL   string

	// JWTSecret enables the bearer check on mutating routes. Empty means
	// the gateway runs open.
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	catalogProxy, err := newProxy(d.CatalogURL, "/api/v1/catalog")
	if err != nil {
		return err
	}
	basketProxy, err := newProxy(d.BasketURL, "/api/v1")
	if err != nil {
		return err
	}
	orderProxy, err := newProxy(d.OrderURL, "/api/v1")
	if err != nil {
		return err
	}

	mutating := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	bearer := middleware.RequireBearer(d.JWTSecret)

	e.Match([]string{http.MethodGet}, "/api/v1/catalog/*", catalogProxy)
	e.Match(mutating, "/api/v1/catalog/*", catalogProxy, bearer)

	e.Match([]string{http.MethodGet}, "/api/v1/basket/*", basketProxy)
	e.Match(mutating, "/api/v1/basket", basketProxy, bearer)
	e.Match(mutating, "/api/v1/basket/*", basketProxy, bearer)

	e.Match([]string{http.MethodGet}, "/api/v1/orders", orderProxy)
	e.Match([]string{http.MethodGet}, "/api/v1/orders/*", orderProxy)

	return nil
}
