package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jjyf27/redpro/core/course"
)

type courseAPI struct {
	service *course.Service
}

func registerCourseAPI(g *echo.Group, svc *course.Service) {
	api := courseAPI{service: svc}

	cg := g.Group("/courses")
	cg.GET("", api.courseQuery)
	cg.GET("/:id", api.courseRetrieve)
}

// courseQuery lists the catalog; ?q= searches titles, ?limit= caps the page.
func (api *courseAPI) courseQuery(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	var courses []course.Course
	var err error
	if q := ctx.QueryParam("q"); q != "" {
		courses, err = api.service.Search(q, limit)
	} else {
		courses, err = api.service.Query(limit)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseAPI) courseRetrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}

	crs, err := api.service.GetByID(id)
	if err != nil {
		if err == course.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}
