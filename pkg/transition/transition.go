// Package transition animates a chart's domain change over a fixed
// duration with cubic ease-in/ease-out, driving a frame callback with the
// in-progress interpolated domain so hover feedback stays visually
// continuous during a zoom.
package transition

import (
	"math"
	"sync"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

const (
	// Duration is the fixed animation length.
	Duration = 750 * time.Millisecond

	// FrameInterval approximates one display frame.
	FrameInterval = 16 * time.Millisecond
)

// FrameFunc receives each interpolated domain along with the eased
// progress in [0,1], so callers can interpolate any other animated axis
// in lockstep. final is true exactly once, on the last frame, which
// always carries the target domain.
type FrameFunc func(d models.TimeDomain, eased float64, final bool)

// Animator schedules domain interpolation frames. A newer animation
// supersedes an older one: the older animation's remaining frames are
// discarded rather than applied over the newer state.
type Animator struct {
	mu       sync.Mutex
	gen      uint64
	clk      clock.Clock
	duration time.Duration
	interval time.Duration
}

// New creates an animator with the standard duration and frame interval.
func New(clk clock.Clock) *Animator {
	if clk == nil {
		clk = clock.System()
	}

	return &Animator{
		clk:      clk,
		duration: Duration,
		interval: FrameInterval,
	}
}

// Animate interpolates from one domain to another, invoking frame for
// each step. The first frame fires after one interval, not immediately.
func (a *Animator) Animate(from, to models.TimeDomain, frame FrameFunc) {
	if frame == nil {
		return
	}

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	steps := int(a.duration / a.interval)
	if steps < 1 {
		steps = 1
	}

	for i := 1; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		elapsed := time.Duration(i) * a.interval

		a.clk.AfterFunc(elapsed, func() {
			if !a.current(gen) {
				return
			}

			eased := easeInOutCubic(progress)
			frame(interpolate(from, to, eased), eased, progress == 1)
		})
	}
}

func (a *Animator) current(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return gen == a.gen
}

// interpolate blends two domains at eased progress t in [0,1].
func interpolate(from, to models.TimeDomain, t float64) models.TimeDomain {
	if t >= 1 {
		return to
	}

	return models.TimeDomain{
		Start: lerpTime(from.Start, to.Start, t),
		End:   lerpTime(from.End, to.End, t),
	}
}

func lerpTime(a, b time.Time, t float64) time.Time {
	return a.Add(time.Duration(t * float64(b.Sub(a))))
}

// easeInOutCubic is the standard symmetric cubic easing curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}

	return 1 - math.Pow(-2*t+2, 3)/2
}
