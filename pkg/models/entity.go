// Package models pkg/models/entity.go
package models

import "time"

// UnitKind selects how an entity's measured values are formatted.
type UnitKind string

const (
	UnitPlain   UnitKind = "plain"
	UnitSeconds UnitKind = "seconds"
	UnitBytes   UnitKind = "bytes"
)

// Entity describes a monitored component.
type Entity struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Unit        UnitKind `json:"unit,omitempty"`
}

// CheckRecord is one raw reliability check for an entity, as fetched
// from the check source before normalization.
type CheckRecord struct {
	Timestamp time.Time `json:"timestamp"`
	OK        bool      `json:"ok"`
	Value     *float64  `json:"value,omitempty"`
	Max       *float64  `json:"max,omitempty"`
}
