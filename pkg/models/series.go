// Package models pkg/models/series.go
package models

import "time"

// DataPoint is a single reliability sample on a chart.
//
// OK is 0 or 1 for a single entity's series and a fractional mean across
// entities for the aggregate series. Value and Max are only present for
// entities that report a measured quantity alongside the pass/fail bit.
type DataPoint struct {
	Timestamp       time.Time          `json:"timestamp"`
	OK              float64            `json:"ok"`
	Value           *float64           `json:"value,omitempty"`
	Max             *float64           `json:"max,omitempty"`
	ComponentStatus map[string]float64 `json:"component_status,omitempty"`
}

// HasValue reports whether the point carries a measured value.
func (p *DataPoint) HasValue() bool {
	return p.Value != nil
}

// ValueOrMax returns Max when present, otherwise Value. The boolean is
// false when the point carries neither.
func (p *DataPoint) ValueOrMax() (float64, bool) {
	if p.Max != nil {
		return *p.Max, true
	}

	if p.Value != nil {
		return *p.Value, true
	}

	return 0, false
}

// Series is an ordered sequence of data points, non-decreasing by timestamp.
type Series []DataPoint

// Extent returns the time domain spanned by the series.
func (s Series) Extent() TimeDomain {
	if len(s) == 0 {
		return TimeDomain{}
	}

	return TimeDomain{Start: s[0].Timestamp, End: s[len(s)-1].Timestamp}
}

// HasValues reports whether the series carries measured values, decided
// from the last data point. This matches chart construction, which fixes
// the value axis once and never revisits the decision.
func (s Series) HasValues() bool {
	if len(s) == 0 {
		return false
	}

	return s[len(s)-1].HasValue()
}

// TimeDomain is the logical time range currently mapped onto a chart.
type TimeDomain struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the domain is unset.
func (d TimeDomain) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Width returns the duration covered by the domain.
func (d TimeDomain) Width() time.Duration {
	return d.End.Sub(d.Start)
}

// Contains reports whether t falls inside the domain, bounds included.
func (d TimeDomain) Contains(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}

// Normalize returns the domain with Start and End swapped if reversed,
// so Start <= End holds for every stored domain.
func (d TimeDomain) Normalize() TimeDomain {
	if d.End.Before(d.Start) {
		return TimeDomain{Start: d.End, End: d.Start}
	}

	return d
}
