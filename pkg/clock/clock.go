// Package clock abstracts timer scheduling so debounce and animation
// behavior can be driven deterministically in tests.
package clock

import "time"

type systemClock struct{}

// System returns a Clock backed by time.AfterFunc.
func System() Clock {
	return systemClock{}
}

func (systemClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
