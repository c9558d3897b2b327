package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jjyf27/redpro/core/order"
)

type orderAPI struct {
	service *order.Service
}

func registerOrderAPI(g *echo.Group, svc *order.Service) {
	api := orderAPI{service: svc}

	og := g.Group("/orders")
	og.POST("", api.orderPlace)
	og.GET("/:number", api.orderRetrieve)

	g.GET("/discounts/:code", api.discountRetrieve)
}

func (api *orderAPI) orderPlace(ctx echo.Context) error {
	data := new(order.NewOrder)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	ord, err := api.service.Place(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ord)
}

// orderRetrieve backs the confirmation page lookup by order number.
func (api *orderAPI) orderRetrieve(ctx echo.Context) error {
	ord, err := api.service.GetByNumber(ctx.Param("number"))
	if err != nil {
		if err == order.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, ord)
}

// discountRetrieve validates a promotional code before checkout applies it.
func (api *orderAPI) discountRetrieve(ctx echo.Context) error {
	code := ctx.Param("code")
	pct, ok := order.DiscountPercent(code)
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusOK, echo.Map{"code": code, "percent": pct})
}
