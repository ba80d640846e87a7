package jaguar

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/kdduha/jaguar-studio/internal/models"
)

// NetworkError is a transport level failure; its message is the underlying error's.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError is a non-2xx response from the remote service.
type HTTPStatusError struct {
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string { return e.Message }

// ParseError means the response body did not decode into the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "invalid response from generation service" }
func (e *ParseError) Unwrap() error { return e.Err }

// ErrNotConfigured is returned when no base endpoint has been set.
var ErrNotConfigured = errors.New("generation service URL is not configured")

const (
	KindValidation = "validation"
	KindNetwork    = "network"
	KindHTTP       = "http"
	KindParse      = "parse"
	KindConfig     = "config"
	KindUnknown    = "unknown"
)

// Kind classifies err into one of the Kind* labels.
func Kind(err error) string {
	var (
		validationErr *models.ValidationError
		networkErr    *NetworkError
		statusErr     *HTTPStatusError
		parseErr      *ParseError
	)
	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &networkErr):
		return KindNetwork
	case errors.As(err, &statusErr):
		return KindHTTP
	case errors.As(err, &parseErr):
		return KindParse
	case errors.Is(err, ErrNotConfigured):
		return KindConfig
	default:
		return KindUnknown
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// newHTTPStatusError takes the message from an {"error": "..."} body when there is one
// and otherwise synthesizes it from the status code.
func newHTTPStatusError(code int, body []byte) *HTTPStatusError {
	var parsed errorBody
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return &HTTPStatusError{StatusCode: code, Message: fmt.Sprintf("HTTP %d", code)}
	}
	if parsed.Error == "" {
		return &HTTPStatusError{StatusCode: code, Message: fmt.Sprintf("HTTP error! status: %d", code)}
	}
	return &HTTPStatusError{StatusCode: code, Message: parsed.Error}
}
