package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/shule/core"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errHTTPForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
	errTokenSigningFailed   = errors.New("failed to sign token")
)

// appHTTPErrorHandler converts every error into the backend envelope so
// clients always get {success:false, message}.
func appHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message string

	switch err := err.(type) {
	case *echo.HTTPError:
		if err == middleware.ErrJWTMissing {
			code = http.StatusUnauthorized
			message = "missing or malformed token"
			break
		}
		code = err.Code
		if msg, ok := err.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	case validator.ValidationErrors:
		code = http.StatusBadRequest
		for _, vErr := range err {
			message = vErr.Translate(core.Translator)
			break
		}
	case *core.ValidationError:
		code = http.StatusBadRequest
		message = err.Error()
		if message == "" && len(err.Fields) > 0 {
			message = err.Fields[0].Error
		}
	default: // any other error is a server error
		code = http.StatusInternalServerError
		message = http.StatusText(http.StatusInternalServerError)
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, envelope{Success: false, Message: message})
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
