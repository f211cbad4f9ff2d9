package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"orders/internal/pkg/errs"
)

// MIMEApplicationProblemJSON is the media type of every error response
// the service produces (RFC 7807).
const MIMEApplicationProblemJSON = "application/problem+json"

// ProblemDetails is the standardized error payload.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewErrorHandler returns the echo error handler that is the single
// mapping point from the internal error taxonomy to problem responses.
// Every mapped error is logged at error level with its full fields
// before being returned.
func NewErrorHandler(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := toProblemDetails(err, c.Request().URL.Path)

		log.Errorw("request failed",
			"error_type", problem.Type,
			"title", problem.Title,
			"status", problem.Status,
			"detail", problem.Detail,
			"instance", problem.Instance,
		)

		header := c.Response().Header()
		if problem.Status == http.StatusUnauthorized {
			header.Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		header.Set(echo.HeaderContentType, MIMEApplicationProblemJSON)
		c.Response().WriteHeader(problem.Status)

		if c.Request().Method != http.MethodHead {
			_ = json.NewEncoder(c.Response()).Encode(problem)
		}
	}
}

// toProblemDetails classifies an error into the fixed taxonomy. Service
// errors carry their own mapping; errors raised by the router itself
// (unknown route, wrong method) are mapped by status code; anything
// unclassified becomes an internal error with no internals leaked.
func toProblemDetails(err error, path string) ProblemDetails {
	var svcErr *errs.ServiceError
	if errors.As(err, &svcErr) {
		return ProblemDetails{
			Type:     svcErr.Type,
			Title:    svcErr.Title,
			Status:   svcErr.Status,
			Detail:   svcErr.Detail,
			Instance: path,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		errorType, title := classifyStatus(httpErr.Code)
		return ProblemDetails{
			Type:     errorType,
			Title:    title,
			Status:   httpErr.Code,
			Detail:   fmt.Sprintf("%v", httpErr.Message),
			Instance: path,
		}
	}

	internal := errs.NewInternalError(err)
	return ProblemDetails{
		Type:     internal.Type,
		Title:    internal.Title,
		Status:   internal.Status,
		Detail:   internal.Detail,
		Instance: path,
	}
}

func classifyStatus(status int) (errorType string, title string) {
	switch status {
	case http.StatusBadRequest:
		return errs.TypeValidationError, "Bad Request"
	case http.StatusUnauthorized:
		return errs.TypeUnauthorized, "Unauthorized"
	case http.StatusForbidden:
		return errs.TypeForbidden, "Forbidden"
	case http.StatusNotFound:
		return errs.TypeNotFound, "Not Found"
	case http.StatusConflict:
		return errs.TypeConflict, "Conflict"
	case http.StatusInternalServerError:
		return errs.TypeInternalError, "Internal Server Error"
	default:
		return errs.TypeInternalError, "Error"
	}
}
