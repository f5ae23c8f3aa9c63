package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	BasketHandler *BasketHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	basket := e.Group("/basket")
	basket.POST("", d.BasketHandler.StoreBasket)
	basket.POST("/checkout", d.BasketHandler.Checkout)
	basket.GET("/:userName", d.BasketHandler.GetBasket)
	basket.DELETE("/:userName", d.BasketHandler.DeleteBasket)
}
