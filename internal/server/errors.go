// Package server provides the HTTP REST API for the talent pipeline.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/health"
)

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	var invalidThresholds *health.InvalidThresholdsError
	if errors.As(err, &invalidThresholds) {
		return http.StatusBadRequest
	}
	if errors.Is(err, health.ErrDataUnavailable) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
