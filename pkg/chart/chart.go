// Package chart coordinates one reliability chart: its scales, brush
// interaction, focus marker, domain transitions, and synchronization with
// sibling charts over the page bus.
package chart

import (
	"sync"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/brush"
	"github.com/mfreeman451/statusgraph/pkg/bus"
	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/hittest"
	"github.com/mfreeman451/statusgraph/pkg/models"
	"github.com/mfreeman451/statusgraph/pkg/scale"
	"github.com/mfreeman451/statusgraph/pkg/transition"
)

// Default plot dimensions, matching the page layout the charts were
// designed for (outer size minus margins).
const (
	DefaultWidth  = 840.0
	DefaultHeight = 120.0
)

// Config describes one chart instance.
type Config struct {
	ID       string
	Entity   models.Entity
	Series   models.Series
	Width    float64
	Height   float64
	Bus      *bus.Bus
	Renderer Renderer
	Clock    clock.Clock
}

// Chart owns the mutable state of one rendered chart. Each chart mutates
// only its own state; the bus subscriber list is the only resource shared
// across instances.
type Chart struct {
	mu sync.Mutex

	id     string
	entity models.Entity
	series models.Series

	// hasValues is decided once at construction from the last data point
	// and is immutable afterwards.
	hasValues bool

	full         models.TimeDomain
	fullValueMax float64

	x      *scale.TimeScale
	status *scale.Linear
	value  *scale.Linear

	focus *models.DataPoint

	machine  *brush.Machine
	animator *transition.Animator
	bus      *bus.Bus
	renderer Renderer
}

// New creates a chart, renders its initial state, and subscribes it to
// the page bus.
func New(cfg Config) (*Chart, error) {
	if cfg.ID == "" {
		return nil, ErrMissingID
	}

	if len(cfg.Series) == 0 {
		return nil, ErrEmptySeries
	}

	if cfg.Bus == nil {
		return nil, ErrNilBus
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.System()
	}

	full := cfg.Series.Extent()

	c := &Chart{
		id:        cfg.ID,
		entity:    cfg.Entity,
		series:    cfg.Series,
		hasValues: cfg.Series.HasValues(),
		full:      full,
		x:         scale.NewTimeScale(full, 0, cfg.Width),
		status:    scale.NewLinear(0, 1, cfg.Height, 0),
		bus:       cfg.Bus,
		renderer:  cfg.Renderer,
		animator:  transition.New(cfg.Clock),
	}

	if c.hasValues {
		c.fullValueMax = scale.VisibleValueMax(c.series, full)
		c.value = scale.NewLinear(0, c.fullValueMax, cfg.Height, 0)
	}

	machine, err := brush.New(brush.Config{
		Clock: cfg.Clock,
		Invert: func(px float64) time.Time {
			c.mu.Lock()
			defer c.mu.Unlock()

			return c.x.Invert(px)
		},
		OnZoom:  c.zoomTo,
		OnReset: c.reset,
	})
	if err != nil {
		return nil, err
	}

	c.machine = machine

	cfg.Bus.SubscribeZoom(c.handleRemoteZoom)
	cfg.Bus.SubscribeFocus(c.handleRemoteFocus)

	c.renderer.ApplyDomain(full, c.valueMaxLocked())

	return c, nil
}

// ID returns the chart identifier used to tag bus events.
func (c *Chart) ID() string {
	return c.id
}

// Entity returns the monitored component this chart displays.
func (c *Chart) Entity() models.Entity {
	return c.entity
}

// Series returns the chart's data. The slice is owned by the chart and
// never mutated after construction.
func (c *Chart) Series() models.Series {
	return c.series
}

// HasValues reports whether the chart carries a value axis.
func (c *Chart) HasValues() bool {
	return c.hasValues
}

// Domain returns the current time domain.
func (c *Chart) Domain() models.TimeDomain {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.x.Domain()
}

// FullDomain returns the series' original full extent.
func (c *Chart) FullDomain() models.TimeDomain {
	return c.full
}

// ValueMax returns the current value-axis upper bound, or the fixed
// status bound for charts without values.
func (c *Chart) ValueMax() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.valueMaxLocked()
}

// Focus returns the currently focused data point, if any.
func (c *Chart) Focus() (models.DataPoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.focus == nil {
		return models.DataPoint{}, false
	}

	return *c.focus, true
}

// Brushing reports whether a drag is in progress.
func (c *Chart) Brushing() bool {
	return c.machine.Focused()
}

func (c *Chart) valueMaxLocked() float64 {
	if c.value != nil {
		return c.value.DomainMax()
	}

	return 1
}

// DragStart begins a brush gesture. Hover handling is suppressed until
// the matching DragEnd.
func (c *Chart) DragStart() {
	c.machine.DragStart()
}

// DragEnd completes a brush gesture with the selection's pixel bounds.
func (c *Chart) DragEnd(p0, p1 float64, empty bool) {
	c.machine.DragEnd(p0, p1, empty)
}

// PointerMove handles a hover at the given pixel x-coordinate: it
// hit-tests the nearest data point, moves the focus marker, and shares
// the hover position with sibling charts.
func (c *Chart) PointerMove(px float64) {
	if c.machine.Focused() {
		return
	}

	c.mu.Lock()
	t := c.x.Invert(px)
	p, fx, fy, ok := c.focusAtLocked(t)
	c.mu.Unlock()

	if ok {
		c.renderer.MoveFocus(p, fx, fy)
	}

	c.bus.PublishFocus(models.FocusEvent{SourceID: c.id, Time: t, Active: true})
}

// PointerLeave clears the focus marker and tells sibling charts to do
// the same.
func (c *Chart) PointerLeave() {
	c.mu.Lock()
	c.focus = nil
	c.mu.Unlock()

	c.renderer.ClearFocus()
	c.bus.PublishFocus(models.FocusEvent{SourceID: c.id, Active: false})
}

// SetWindow re-derives the time window from a relative duration measured
// back from the end of the full extent, or resets to the full extent when
// d is zero. This is the entry point used by the host's duration controls.
func (c *Chart) SetWindow(d time.Duration) {
	if d <= 0 {
		c.zoomTo(c.full)
		return
	}

	start := c.full.End.Add(-d)
	if start.Before(c.full.Start) {
		start = c.full.Start
	}

	c.zoomTo(models.TimeDomain{Start: start, End: c.full.End})
}

// zoomTo transitions the chart to a new time domain and publishes the
// change. It serves both completed brush selections and window resets.
func (c *Chart) zoomTo(target models.TimeDomain) {
	target = target.Normalize()

	c.mu.Lock()
	from := c.x.Domain()
	fromMax := c.valueMaxLocked()
	toMax := fromMax

	if c.value != nil {
		toMax = scale.VisibleValueMax(c.series, target)
	}
	c.mu.Unlock()

	c.renderer.ClearBrush()
	c.animate(from, target, fromMax, toMax)
	c.bus.PublishZoom(models.ZoomEvent{SourceID: c.id, Domain: target})
}

// reset restores the full extent after the debounce timer confirms a
// deliberate reset click.
func (c *Chart) reset() {
	c.zoomTo(c.full)
}

// animate runs the domain transition, repositioning the focus marker with
// the in-progress interpolated domain at each frame.
func (c *Chart) animate(from, to models.TimeDomain, fromMax, toMax float64) {
	c.animator.Animate(from, to, func(d models.TimeDomain, eased float64, final bool) {
		c.mu.Lock()

		c.x.SetDomain(d)

		vm := fromMax + (toMax-fromMax)*eased
		if final {
			vm = toMax
		}

		if c.value != nil {
			c.value.SetDomainMax(vm)
		}

		focus := c.focus
		var fx, fy float64

		if focus != nil {
			fx = c.x.Project(focus.Timestamp)
			fy = c.markerYLocked(focus)
		}
		c.mu.Unlock()

		c.renderer.ApplyDomain(d, vm)

		if focus != nil {
			c.renderer.MoveFocus(*focus, fx, fy)
		}
	})
}

// handleRemoteZoom applies a sibling chart's domain change. The origin
// guard here is the only mechanism preventing feedback loops.
func (c *Chart) handleRemoteZoom(ev models.ZoomEvent) {
	if ev.SourceID == c.id {
		return
	}

	c.mu.Lock()
	from := c.x.Domain()
	fromMax := c.valueMaxLocked()
	toMax := fromMax

	if c.value != nil {
		toMax = scale.VisibleValueMax(c.series, ev.Domain)
	}
	c.mu.Unlock()

	c.animate(from, ev.Domain.Normalize(), fromMax, toMax)
}

// handleRemoteFocus applies a sibling chart's hover position. The local
// brushing flag only suppresses pointer-driven hover, so it is not
// consulted here.
func (c *Chart) handleRemoteFocus(ev models.FocusEvent) {
	if ev.SourceID == c.id {
		return
	}

	if !ev.Active {
		c.mu.Lock()
		c.focus = nil
		c.mu.Unlock()

		c.renderer.ClearFocus()

		return
	}

	c.mu.Lock()
	p, fx, fy, ok := c.focusAtLocked(ev.Time)
	c.mu.Unlock()

	if ok {
		c.renderer.MoveFocus(p, fx, fy)
	}
}

// focusAtLocked hit-tests t against the chart's own series, stores the
// focus, and returns the marker coordinates. The renderer call belongs
// to the caller, after the lock is released. The marker's y-position
// uses the value scale when the matched point carries a value, the
// status scale otherwise.
func (c *Chart) focusAtLocked(t time.Time) (models.DataPoint, float64, float64, bool) {
	p, ok := hittest.Nearest(c.series, t)
	if !ok {
		return models.DataPoint{}, 0, 0, false
	}

	c.focus = &p

	return p, c.x.Project(p.Timestamp), c.markerYLocked(&p), true
}

func (c *Chart) markerYLocked(p *models.DataPoint) float64 {
	if p.HasValue() && c.value != nil {
		return c.value.Project(*p.Value)
	}

	return c.status.Project(p.OK)
}
