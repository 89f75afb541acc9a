package restdb

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCodeError is returned for every non-2xx store response. It carries the
// raw status code only; attaching domain meaning is the caller's job.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

// IsNotFound reports whether err is a store response with status 404.
func IsNotFound(err error) bool {
	var statusErr *StatusCodeError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
