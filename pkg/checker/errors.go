package checker

import "errors"

var (
	ErrNoEntities = errors.New("check data contains no entities")
	ErrNoChecks   = errors.New("entity has no check records")
)
