package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatemint/goapi/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeErrResp maps a domain error to its wire status. A confirmation
// timeout is surfaced as 504 so callers can tell "definitely did not
// mint" apart from "unknown, check manually".
func MakeErrResp(c echo.Context, err error) error {
	return MakeJsonResp(c, statusOf(err), err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSubmissionRejected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrUpstreamProtocol),
		errors.Is(err, domain.ErrUpstreamDataMissing),
		errors.Is(err, domain.ErrConfirmationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
