package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/teacher"
)

var teacherUsernameParam = "teacher_username"

type authApi struct {
	svc teacher.Service
}

func registerAuthAPI(app *echo.Echo, svc teacher.Service) {
	api := authApi{svc: svc}

	g := app.Group("/auth")
	g.POST("/login", api.login)
	g.GET("/check-session", api.checkSession)
}

// requestRole resolves the typed role for a request from its
// teacher_username query param; an invalid or absent session maps to
// teacher.RoleAnonymous.
func requestRole(ctx echo.Context, svc teacher.Service) teacher.Role {
	return svc.Authorize(ctx.QueryParam(teacherUsernameParam))
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	data := LoginRequest{
		Username: ctx.QueryParam("username"),
		Password: ctx.QueryParam("password"),
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tchr, err := api.svc.Login(data.Username, data.Password)
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusOK, tchr)
}

func (api *authApi) checkSession(ctx echo.Context) error {
	username := core.CleanString(ctx.QueryParam("username"), true /* lower */)
	valid, err := api.svc.CheckSession(username)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, CheckSessionResponse{Username: username, Valid: valid})
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	CheckSessionResponse struct {
		Username string `json:"username"`
		Valid    bool   `json:"valid"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Username = core.CleanString(lr.Username, true /* lower */)
	return core.Validate.Struct(lr)
}
