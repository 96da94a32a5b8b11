package chart

import "github.com/mfreeman451/statusgraph/pkg/models"

//go:generate mockgen -destination=mock_renderer.go -package=chart github.com/mfreeman451/statusgraph/pkg/chart Renderer

// Renderer draws one chart's geometry. The coordinator calls it with
// already-projected pixel coordinates; implementations only emit output.
type Renderer interface {
	// ApplyDomain redraws the x-axis, any active value axis, and every
	// line path for the given (possibly mid-animation) domain.
	ApplyDomain(domain models.TimeDomain, valueMax float64)

	// MoveFocus positions the focus marker and tooltip on a data point.
	MoveFocus(point models.DataPoint, x, y float64)

	// ClearFocus removes the focus marker and tooltip.
	ClearFocus()

	// ClearBrush removes the visible brush selection overlay.
	ClearBrush()
}
