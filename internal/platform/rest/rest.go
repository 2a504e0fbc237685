// Package rest holds the small request helpers and the error renderer shared
// by every /api resource.
package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ParseID parses a decimal record id. Anything that is not an integer is
// reported as !ok; callers treat it as an id that matches no record.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// PathID parses the ":id" route parameter.
func PathID(c echo.Context) (int64, bool) {
	return ParseID(c.Param("id"))
}

// NotFound builds a 404 with the given message.
func NotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// BadRequest builds a 400 with msg, keeping cause for the logs.
func BadRequest(msg string, cause error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg).SetInternal(cause)
}

// Internal builds a 500 with msg, keeping cause for the logs.
func Internal(msg string, cause error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(cause)
}

// Message is the body of every error response.
type Message struct {
	Message string `json:"message"`
}

// ErrorHandler renders errors as {"message": ...}. Server errors are logged
// with their internal cause; the cause is never sent to the client.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			default:
				msg = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			evt := logger.Error()
			if he != nil && he.Internal != nil {
				evt = evt.AnErr("cause", he.Internal)
			} else {
				evt = evt.Err(err)
			}
			rid, _ := c.Get("request_id").(string)
			evt.Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, Message{Message: msg})
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
