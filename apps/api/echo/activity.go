package echoapi

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/activity"
)

type activityApi struct {
	svc activity.Service
}

func registerActivityAPI(app *echo.Echo, svc activity.Service) {
	api := activityApi{svc: svc}

	ag := app.Group("/activities")
	ag.GET("", api.query)
	ag.POST("/:name/signup", api.signup)
	ag.POST("/:name/unregister", api.unregister)
}

// Handlers

func (api *activityApi) query(ctx echo.Context) error {
	acts, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}

	res := make(map[string]ActivityResponse, len(acts))
	for _, act := range acts {
		res[act.Name] = newActivityResponse(act)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *activityApi) signup(ctx echo.Context) error {
	data := SignupRequest{Email: ctx.QueryParam("email")}
	if err := data.Validate(); err != nil {
		return err
	}

	act, err := api.svc.Signup(pathName(ctx), data.Email)
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusOK, newActivityResponse(act))
}

func (api *activityApi) unregister(ctx echo.Context) error {
	data := SignupRequest{Email: ctx.QueryParam("email")}
	if err := data.Validate(); err != nil {
		return err
	}

	act, err := api.svc.Unregister(pathName(ctx), data.Email)
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusOK, newActivityResponse(act))
}

// pathName returns the :name path param with URL escapes resolved
// ("Chess%20Club" -> "Chess Club").
func pathName(ctx echo.Context) string {
	name := ctx.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

type (
	// ActivityResponse is an Activity with its current participant count.
	ActivityResponse struct {
		activity.Activity
		CurrentParticipants int `json:"current_participants"`
	}

	SignupRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)

func newActivityResponse(act activity.Activity) ActivityResponse {
	return ActivityResponse{Activity: act, CurrentParticipants: act.ParticipantCount()}
}

func (sr *SignupRequest) Validate() error {
	sr.Email = core.CleanString(sr.Email, true /* lower */)
	return core.Validate.Struct(sr)
}
