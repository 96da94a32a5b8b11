package checker

import (
	"context"
)

// Source provides raw reliability checks and entity metadata for one
// monitored project. Fetch failures stay in the host layer; the chart
// core assumes well-formed series on construction.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}
