// Package health orchestrates the metrics conversions over an organization's
// pipeline snapshot, producing an append-only health record with triggers,
// alerts, and recommendations.
package health

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDataUnavailable indicates a required aggregate (jobs, applications) could
// not be obtained. The calculation fails outright rather than emitting a
// misleading zero-score record.
var ErrDataUnavailable = errors.New("pipeline data unavailable")

// InvalidThresholdsError carries the specific violations of a threshold
// configuration that failed validation.
type InvalidThresholdsError struct {
	Violations []string
}

func (e *InvalidThresholdsError) Error() string {
	return fmt.Sprintf("invalid threshold configuration: %s", strings.Join(e.Violations, "; "))
}
