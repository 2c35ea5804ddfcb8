package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
)

// mapDomainError translates domain sentinel errors to HTTP errors; anything
// unknown passes through to the error handler as a server error.
func mapDomainError(err error) error {
	switch cause := errors.Cause(err); cause {
	case activity.ErrNotFound, announcement.ErrNotFound, teacher.ErrNotFound:
		return echo.NewHTTPError(http.StatusNotFound, cause.Error())
	case activity.ErrAlreadyRegistered, activity.ErrCapacityExceeded:
		return echo.NewHTTPError(http.StatusConflict, cause.Error())
	case activity.ErrNotRegistered:
		return echo.NewHTTPError(http.StatusBadRequest, cause.Error())
	case announcement.ErrForbidden:
		return echo.NewHTTPError(http.StatusForbidden, cause.Error())
	case teacher.ErrInvalidCredentials:
		return echo.NewHTTPError(http.StatusUnauthorized, cause.Error())
	}
	return err
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			logger.Error(msg, errors.Wrap(err, msg))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
