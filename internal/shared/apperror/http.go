package apperror

import (
	"errors"
	"net/http"
)

// Upstream is implemented by errors coming back from the ERP backend client.
// UpstreamStatus is 0 when the request never got a response.
type Upstream interface {
	error
	UpstreamStatus() int
	UpstreamMessage() string
}

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	var up Upstream
	if errors.As(err, &up) {
		status := up.UpstreamStatus()
		switch {
		case status == 0:
			return HTTPError{
				Status:  http.StatusServiceUnavailable,
				Code:    CodeServiceUnavailable,
				Message: "Backend is unreachable",
			}
		case status == http.StatusNotFound:
			return HTTPError{Status: status, Code: CodeNotFound, Message: upstreamMessage(up)}
		case status == http.StatusConflict:
			return HTTPError{Status: status, Code: CodeConflict, Message: upstreamMessage(up)}
		case status == http.StatusUnauthorized:
			return HTTPError{Status: status, Code: CodeUnauthorized, Message: upstreamMessage(up)}
		case status == http.StatusForbidden:
			return HTTPError{Status: status, Code: CodeForbidden, Message: upstreamMessage(up)}
		case status >= 400 && status < 500:
			return HTTPError{Status: status, Code: CodeInvalidInput, Message: upstreamMessage(up)}
		default:
			return HTTPError{
				Status:  http.StatusBadGateway,
				Code:    CodeUpstreamError,
				Message: upstreamMessage(up),
			}
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}

func upstreamMessage(up Upstream) string {
	if msg := up.UpstreamMessage(); msg != "" {
		return msg
	}
	return http.StatusText(up.UpstreamStatus())
}
