package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jjyf27/redpro/core/contact"
)

type contactAPI struct {
	service *contact.Service
}

func registerContactAPI(g *echo.Group, svc *contact.Service) {
	api := contactAPI{service: svc}
	g.POST("/contact", api.contactSubmit)
}

func (api *contactAPI) contactSubmit(ctx echo.Context) error {
	data := new(contact.NewMessage)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	msg, err := api.service.Submit(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, msg)
}
