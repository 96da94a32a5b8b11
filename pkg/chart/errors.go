package chart

import "errors"

var (
	ErrEmptySeries = errors.New("chart requires a non-empty series")
	ErrNilBus      = errors.New("chart requires a synchronization bus")
	ErrNilRenderer = errors.New("chart requires a renderer")
	ErrMissingID   = errors.New("chart requires an identifier")
	ErrNoAggregate = errors.New("page requires an aggregate series")
)
