package metrics

import (
	"fmt"
	"math"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// Display colors per health status
var statusColors = map[string]string{
	types.StatusHealthy:  "#00c851",
	types.StatusWarning:  "#ffaa00",
	types.StatusCritical: "#ff4444",
}

const neutralColor = "#6c757d"

// Display labels per health status
var statusLabels = map[string]string{
	types.StatusHealthy:  "Healthy",
	types.StatusWarning:  "Needs Attention",
	types.StatusCritical: "Critical",
}

const unknownLabel = "Unknown"

// FormatHealthScore renders a score as a percentage string, e.g. "62%".
func FormatHealthScore(score int) string {
	return fmt.Sprintf("%d%%", score)
}

// FormatPercentage renders a value as a rounded percentage string.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(value)))
}

// FormatRatio renders a ratio string with two decimals, e.g. "2.50:1".
func FormatRatio(value float64) string {
	return fmt.Sprintf("%.2f:1", value)
}

// FormatDays renders a day count, e.g. "30d".
func FormatDays(value float64) string {
	return fmt.Sprintf("%dd", int(math.Round(value)))
}

// StatusColor returns the display color for a health status.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return neutralColor
}

// StatusLabel returns the display label for a health status.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return unknownLabel
}
