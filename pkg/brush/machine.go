// Package brush interprets pointer-drag selections as zoom requests and
// disambiguates deliberate reset clicks from the spurious empty-selection
// events synthesized when the brush overlay is cleared after a real zoom.
package brush

import (
	"sync"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

// ResetDelay is how long an empty-selection end event must go without a
// new drag-start before it is treated as a deliberate reset click.
const ResetDelay = 350 * time.Millisecond

// State of the brush machine.
type State int

const (
	// Idle means no drag is in progress and no reset is pending.
	Idle State = iota
	// Brushing means a drag is in progress; hover handling is suppressed.
	Brushing
	// PendingReset means an empty selection ended and the debounce timer
	// is running.
	PendingReset
)

func (s State) String() string {
	switch s {
	case Brushing:
		return "brushing"
	case PendingReset:
		return "pending-reset"
	default:
		return "idle"
	}
}

// Machine drives one chart's brush interaction. Invert translates the
// pixel bounds of a completed selection into a time domain; OnZoom and
// OnReset receive the resulting domain transitions.
type Machine struct {
	mu    sync.Mutex
	state State

	// gen guards stale debounce timers: a timer only fires if no new
	// drag-start superseded it, checked by generation rather than by
	// assuming the timer cancelled itself.
	gen uint64

	clk    clock.Clock
	delay  time.Duration
	invert func(px float64) time.Time

	onZoom  func(models.TimeDomain)
	onReset func()
}

// Config wires a Machine to its chart.
type Config struct {
	Clock   clock.Clock
	Delay   time.Duration
	Invert  func(px float64) time.Time
	OnZoom  func(models.TimeDomain)
	OnReset func()
}

// New creates an idle brush machine.
func New(cfg Config) (*Machine, error) {
	if cfg.Invert == nil {
		return nil, ErrNilInvert
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.System()
	}

	if cfg.Delay <= 0 {
		cfg.Delay = ResetDelay
	}

	return &Machine{
		state:   Idle,
		clk:     cfg.Clock,
		delay:   cfg.Delay,
		invert:  cfg.Invert,
		onZoom:  cfg.OnZoom,
		onReset: cfg.OnReset,
	}, nil
}

// State returns the current machine state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Focused reports whether hover handling should be suppressed. It is true
// strictly between drag-start and drag-end.
func (m *Machine) Focused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state == Brushing
}

// DragStart enters Brushing. A fresh drag supersedes any pending reset:
// the generation bump makes the stale timer's eventual firing a no-op.
func (m *Machine) DragStart() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.state = Brushing
}

// DragEnd completes a drag with the selection's pixel bounds. A non-empty
// selection zooms to the inverted time range. An empty selection, or one
// that inverts to a zero-width range, starts the reset debounce instead.
func (m *Machine) DragEnd(p0, p1 float64, empty bool) {
	m.mu.Lock()

	if m.state != Brushing {
		m.mu.Unlock()
		return
	}

	var domain models.TimeDomain

	if !empty {
		domain = models.TimeDomain{Start: m.invert(p0), End: m.invert(p1)}.Normalize()
		if domain.Width() == 0 {
			empty = true
		}
	}

	if empty {
		m.state = PendingReset
		m.gen++
		gen := m.gen
		m.mu.Unlock()

		m.clk.AfterFunc(m.delay, func() {
			m.fire(gen)
		})

		return
	}

	m.state = Idle
	onZoom := m.onZoom
	m.mu.Unlock()

	if onZoom != nil {
		onZoom(domain)
	}
}

// fire completes a pending reset unless a newer drag superseded it.
func (m *Machine) fire(gen uint64) {
	m.mu.Lock()

	if gen != m.gen || m.state != PendingReset {
		m.mu.Unlock()
		return
	}

	m.state = Idle
	onReset := m.onReset
	m.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}
