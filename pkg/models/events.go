// Package models pkg/models/events.go
package models

import "time"

// ZoomEvent announces a time-domain change made by one chart.
type ZoomEvent struct {
	SourceID string     `json:"source_id"`
	Domain   TimeDomain `json:"domain"`
}

// FocusEvent announces a hover-position change made by one chart.
// Active is false when the pointer left the plot and the focus marker
// should be cleared.
type FocusEvent struct {
	SourceID string    `json:"source_id"`
	Time     time.Time `json:"time"`
	Active   bool      `json:"active"`
}
