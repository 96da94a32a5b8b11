package brush

import "errors"

var (
	ErrNilInvert = errors.New("brush machine requires an invert function")
)
