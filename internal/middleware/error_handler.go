package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartShopper/pkg/logger"
)

// ErrorHandler is the echo HTTPErrorHandler: it logs once and answers with
// the {"message": ...} shape the handlers use everywhere else.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "path", c.Path(), "error", err.Error())
	}

	if writeErr := c.JSON(code, map[string]interface{}{"message": message}); writeErr != nil {
		logger.Error("failed to write error response", writeErr)
	}
}
