package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/user"
)

type userAPI struct {
	service *user.Service
	conf    *core.Config
}

func registerUserAPI(g *echo.Group, svc *user.Service, conf *core.Config) {
	api := userAPI{service: svc, conf: conf}

	ug := g.Group("/users")
	ug.POST("/register", api.userRegister)
	ug.POST("/login", api.userLogin)
	ug.POST("/logout", api.userLogout)
	ug.GET("/me", api.userMe)
}

func (api *userAPI) userRegister(ctx echo.Context) error {
	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	usr, err := api.service.Register(*data)
	if err != nil {
		return err
	}

	token, err := GenerateToken(GetUserClaims(usr, api.conf), api.conf)
	if err != nil {
		return err
	}
	setSessionCookie(ctx, token, api.conf)

	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userAPI) userLogin(ctx echo.Context) error {
	data := new(user.Login)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	usr, err := api.service.Authenticate(*data)
	if err != nil {
		if err == user.ErrNotFound {
			return errAuthenticationFailed
		}
		return err
	}

	token, err := GenerateToken(GetUserClaims(usr, api.conf), api.conf)
	if err != nil {
		return err
	}
	setSessionCookie(ctx, token, api.conf)

	return ctx.JSON(http.StatusOK, usr)
}

func (api *userAPI) userLogout(ctx echo.Context) error {
	clearSessionCookie(ctx)
	return ctx.NoContent(http.StatusNoContent)
}

// userMe reports the current session; the storefront greets the visitor
// with it. An anonymous visitor gets a null name, not an error.
func (api *userAPI) userMe(ctx echo.Context) error {
	claims, err := getSessionClaims(ctx, api.conf)
	if err != nil || claims == nil {
		return ctx.JSON(http.StatusOK, echo.Map{"name": nil})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"name": claims.Name, "email": claims.Email})
}
