// Package hittest resolves a pointer time position to the nearest data
// point of an ordered series.
package hittest

import (
	"sort"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

// NearestIndex returns the index of the series point nearest to t.
// It bisects for the insertion index of t and compares the two
// neighboring candidates; ties resolve to the earlier point. At the
// series edges the single existing neighbor wins. Returns -1 for an
// empty series.
func NearestIndex(s models.Series, t time.Time) int {
	if len(s) == 0 {
		return -1
	}

	i := sort.Search(len(s), func(i int) bool {
		return !s[i].Timestamp.Before(t)
	})

	if i == 0 {
		return 0
	}

	if i == len(s) {
		return len(s) - 1
	}

	left := t.Sub(s[i-1].Timestamp)
	right := s[i].Timestamp.Sub(t)

	if left <= right {
		return i - 1
	}

	return i
}

// Nearest returns the series point nearest to t. The boolean is false
// for an empty series.
func Nearest(s models.Series, t time.Time) (models.DataPoint, bool) {
	i := NearestIndex(s, t)
	if i < 0 {
		return models.DataPoint{}, false
	}

	return s[i], true
}
