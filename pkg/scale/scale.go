// Package scale implements the projection between chart domains and pixel
// ranges: a time scale for the x-axis and linear scales for the status and
// value axes.
package scale

import (
	"time"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

// DefaultValueMax is the value-axis upper bound used when no point inside
// the current time domain carries a value.
const DefaultValueMax = 1

// TimeScale maps a time domain onto a horizontal pixel range.
type TimeScale struct {
	domain   models.TimeDomain
	rangeMin float64
	rangeMax float64
}

// NewTimeScale creates a time scale for the given domain and pixel range.
func NewTimeScale(domain models.TimeDomain, rangeMin, rangeMax float64) *TimeScale {
	return &TimeScale{
		domain:   domain.Normalize(),
		rangeMin: rangeMin,
		rangeMax: rangeMax,
	}
}

// Domain returns the current time domain.
func (s *TimeScale) Domain() models.TimeDomain {
	return s.domain
}

// SetDomain replaces the time domain. Reversed bounds are normalized so
// Start <= End always holds.
func (s *TimeScale) SetDomain(d models.TimeDomain) {
	s.domain = d.Normalize()
}

// Project maps a timestamp to a pixel x-coordinate.
func (s *TimeScale) Project(t time.Time) float64 {
	span := s.domain.Width()
	if span <= 0 {
		return s.rangeMin
	}

	frac := float64(t.Sub(s.domain.Start)) / float64(span)

	return s.rangeMin + frac*(s.rangeMax-s.rangeMin)
}

// Invert maps a pixel x-coordinate back to a timestamp. Project and
// Invert are mutual inverses within numeric rounding.
func (s *TimeScale) Invert(px float64) time.Time {
	width := s.rangeMax - s.rangeMin
	if width == 0 {
		return s.domain.Start
	}

	frac := (px - s.rangeMin) / width

	return s.domain.Start.Add(time.Duration(frac * float64(s.domain.Width())))
}

// Linear maps a numeric domain onto a vertical pixel range. Charts use two:
// a status scale with fixed domain [0,1] and an optional value scale whose
// upper bound tracks the points visible in the current time domain.
type Linear struct {
	domainMin float64
	domainMax float64
	rangeMin  float64
	rangeMax  float64
}

// NewLinear creates a linear scale. The pixel range is typically
// [height, 0] so larger values sit higher on the chart.
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64) *Linear {
	return &Linear{
		domainMin: domainMin,
		domainMax: domainMax,
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// SetDomainMax replaces the upper domain bound, keeping the lower bound.
func (l *Linear) SetDomainMax(max float64) {
	l.domainMax = max
}

// DomainMax returns the current upper domain bound.
func (l *Linear) DomainMax() float64 {
	return l.domainMax
}

// Project maps a domain value to a pixel coordinate.
func (l *Linear) Project(v float64) float64 {
	span := l.domainMax - l.domainMin
	if span == 0 {
		return l.rangeMin
	}

	frac := (v - l.domainMin) / span

	return l.rangeMin + frac*(l.rangeMax-l.rangeMin)
}

// Invert maps a pixel coordinate back to a domain value.
func (l *Linear) Invert(px float64) float64 {
	width := l.rangeMax - l.rangeMin
	if width == 0 {
		return l.domainMin
	}

	return l.domainMin + (px-l.rangeMin)/width*(l.domainMax-l.domainMin)
}

// VisibleValueMax computes the value-axis upper bound for a time domain:
// the max of Max (falling back to Value) over the points whose timestamp
// falls inside the domain, or DefaultValueMax when no visible point
// carries either.
func VisibleValueMax(s models.Series, d models.TimeDomain) float64 {
	max := 0.0
	found := false

	for i := range s {
		if !d.Contains(s[i].Timestamp) {
			continue
		}

		v, ok := s[i].ValueOrMax()
		if !ok {
			continue
		}

		if !found || v > max {
			max = v
			found = true
		}
	}

	if !found {
		return DefaultValueMax
	}

	return max
}
