package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core"
	"github.com/spartanadvise/advisor/core/schedule"
)

type scheduleApi struct {
	svc        *schedule.Service
	conf       *core.Config
	validate   *validator.Validate
	translator ut.Translator
}

func registerScheduleAPI(
	g *echo.Group,
	svc *schedule.Service,
	conf *core.Config,
	validate *validator.Validate,
	translator ut.Translator,
) {
	api := scheduleApi{
		svc:        svc,
		conf:       conf,
		validate:   validate,
		translator: translator,
	}

	sg := g.Group("/schedule")
	sg.POST("/match", api.match)
}

// Handlers

func (api *scheduleApi) match(ctx echo.Context) error {
	var data MatchRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MatchRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	opts := schedule.NewMatchOptions()
	opts.DayStartHour = api.conf.Schedule.DayStartHour
	opts.SlotMinutes = api.conf.Schedule.SlotMinutes
	opts.RequireAllDays = api.conf.Schedule.RequireAllDays
	if data.RequireAllDays != nil {
		opts.RequireAllDays = *data.RequireAllDays
	}

	classes, err := api.svc.Match(ctx.Request().Context(), data.DecodeAvailability(), data.Courses, opts)
	if err != nil {
		return errors.Wrap(err, "matching classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}
