// Package units formats measured values for value-axis ticks and tooltip
// text. Seconds render as days and bytes as gigabytes; plain values pass
// through unchanged.
package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

const (
	secondsPerDay  = 86400
	bytesPerGB     = 1 << 30
	daysDisplayKey = "days"
	gbDisplayKey   = "GB"
)

// Formatter renders numeric values for one unit kind.
type Formatter struct {
	kind models.UnitKind
}

// ForKind returns the formatter for a unit kind. Unknown kinds behave
// like plain values.
func ForKind(kind models.UnitKind) Formatter {
	return Formatter{kind: kind}
}

// Convert rescales a raw value into its display unit.
func (f Formatter) Convert(v float64) float64 {
	switch f.kind {
	case models.UnitSeconds:
		return v / secondsPerDay
	case models.UnitBytes:
		return math.Round(v / bytesPerGB)
	default:
		return v
	}
}

// Format renders a raw value as display text, without the display key.
func (f Formatter) Format(v float64) string {
	switch f.kind {
	case models.UnitSeconds:
		return fmt.Sprintf("%.1f", v/secondsPerDay)
	case models.UnitBytes:
		return strconv.FormatFloat(math.Round(v/bytesPerGB), 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// DisplayKey returns the unit label shown next to formatted values, or
// an empty string for plain values.
func (f Formatter) DisplayKey() string {
	switch f.kind {
	case models.UnitSeconds:
		return daysDisplayKey
	case models.UnitBytes:
		return gbDisplayKey
	default:
		return ""
	}
}
