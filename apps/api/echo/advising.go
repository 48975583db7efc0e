package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/ge"
)

type advisingApi struct {
	svc        *ge.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAdvisingAPI(
	g *echo.Group,
	svc *ge.Service,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := advisingApi{
		svc:        svc,
		validate:   validate,
		translator: translator,
	}

	ag := g.Group("/advising")
	ag.POST("/reconcile", api.reconcile)
	ag.GET("/ge/areas", api.queryAreas)
	ag.GET("/ge/areas/:area/courses", api.queryAreaCourses)
}

// Handlers

func (api *advisingApi) reconcile(ctx echo.Context) error {
	var data ReconcileRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReconcileRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res := api.svc.Reconcile(ctx.Request().Context(), data.Major, data.ClassesTaken, data.APCredits)
	return ctx.JSON(http.StatusOK, res)
}

func (api *advisingApi) queryAreas(ctx echo.Context) error {
	type areaInfo struct {
		Area     ge.AreaCode `json:"area"`
		Category ge.Category `json:"category"`
		Units    float64     `json:"required_units"`
	}

	var areas []areaInfo
	for _, cat := range ge.CategoryOrder {
		for _, area := range ge.CategoryAreas(cat) {
			areas = append(areas, areaInfo{
				Area:     area,
				Category: cat,
				Units:    ge.RequiredUnits(cat),
			})
		}
	}
	return ctx.JSON(http.StatusOK, areas)
}

func (api *advisingApi) queryAreaCourses(ctx echo.Context) error {
	area := ge.AreaCode(ctx.Param("area"))
	if _, ok := ge.CategoryOf(area); !ok {
		return errHttpNotFound
	}

	courses, err := api.svc.CoursesByArea(ctx.Request().Context(), area)
	if err != nil {
		return errors.Wrapf(err, "querying courses for area %s", area)
	}
	return ctx.JSON(http.StatusOK, courses)
}
