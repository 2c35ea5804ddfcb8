package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
)

type announcementApi struct {
	svc        announcement.Service
	teacherSvc teacher.Service
}

func registerAnnouncementAPI(app *echo.Echo, svc announcement.Service, teacherSvc teacher.Service) {
	api := announcementApi{svc: svc, teacherSvc: teacherSvc}

	ag := app.Group("/announcements")
	ag.GET("", api.queryActive)
	ag.GET("/all", api.queryAll)
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *announcementApi) queryActive(ctx echo.Context) error {
	anns, err := api.svc.QueryActive()
	if err != nil {
		return errors.Wrap(err, "querying active announcements")
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *announcementApi) queryAll(ctx echo.Context) error {
	anns, err := api.svc.QueryAll(requestRole(ctx, api.teacherSvc))
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *announcementApi) create(ctx echo.Context) error {
	var data announcement.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}

	ann, err := api.svc.Create(requestRole(ctx, api.teacherSvc), data)
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusCreated, ann)
}

func (api *announcementApi) update(ctx echo.Context) error {
	var data announcement.UpdateAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAnnouncement")
	}

	ann, err := api.svc.Update(requestRole(ctx, api.teacherSvc), ctx.Param("id"), data)
	if err != nil {
		return mapDomainError(err)
	}
	return ctx.JSON(http.StatusOK, ann)
}

func (api *announcementApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(requestRole(ctx, api.teacherSvc), ctx.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
