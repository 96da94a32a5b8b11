package clock

import "time"

// Clock schedules callbacks on the host's event loop. The brush debounce
// timer and the transition animator are the only consumers.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}
