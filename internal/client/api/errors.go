package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/heartmarshall/daybook-backend/internal/apimodel"
	"github.com/heartmarshall/daybook-backend/internal/domain"
)

// ErrUnreachable wraps transport failures: the server could not be reached
// or the connection broke before a response arrived.
var ErrUnreachable = errors.New("server unreachable")

// StatusError is a non-2xx response without a matching domain sentinel.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Code)
	}
	return fmt.Sprintf("api: status %d: %s", e.Code, e.Message)
}

func decodeError(resp *http.Response) error {
	var body apimodel.Error
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		if len(body.Fields) > 0 {
			fields := make([]domain.FieldError, 0, len(body.Fields))
			for _, f := range body.Fields {
				fields = append(fields, domain.FieldError{Field: f.Field, Message: f.Message})
			}
			return domain.NewValidationErrors(fields)
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, body.Error)
	case http.StatusUnauthorized:
		return fmt.Errorf("api: %w", domain.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("api: %w", domain.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("api: %w", domain.ErrNotFound)
	case http.StatusConflict:
		if body.Error == "conflict" {
			return fmt.Errorf("api: %w", domain.ErrConflict)
		}
		return fmt.Errorf("api: %w", domain.ErrAlreadyExists)
	default:
		return &StatusError{Code: resp.StatusCode, Message: body.Error}
	}
}
