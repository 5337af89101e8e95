package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response ends up in messages.
const maxErrorBody = 512

func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		sentinel = ErrUnexpectedStatus
	}

	return &RemoteError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Err:        fmt.Errorf("%w: %s", sentinel, body),
	}
}

// transportError wraps a failure that produced no HTTP response.
func transportError(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}
