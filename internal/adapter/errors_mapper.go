package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/nightlight-app/storysync/models"
)

// mapHTTPError converts a non-2xx gateway response into one of the package
// sentinel errors, preserving the server's message so callers can log it.
// The gateway wraps every error in a JSON envelope; when the body is not an
// envelope (proxy errors, plain-text 502s) the raw body is used instead.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := envelopeMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

func envelopeMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.ErrorCode != "" {
		if envelope.Message != "" {
			return fmt.Sprintf("%s: %s", envelope.ErrorCode, envelope.Message)
		}
		return envelope.ErrorCode
	}

	return strings.TrimSpace(string(body))
}
