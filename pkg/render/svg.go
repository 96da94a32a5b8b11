// Package render provides the SVG implementation of the chart renderer.
// It keeps the last applied geometry and emits a complete SVG document on
// demand, so one renderer instance serves both animation frames and the
// HTTP chart endpoint.
package render

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/chart"
	"github.com/mfreeman451/statusgraph/pkg/models"
	"github.com/mfreeman451/statusgraph/pkg/scale"
	"github.com/mfreeman451/statusgraph/pkg/units"
)

const (
	xTickCount     = 6
	valueTickCount = 4
	xTickFormat    = "01-02 15:04"
	markerRadius   = 4
)

// Config sizes one SVG chart. Width and Height are the plot area, matching
// the ranges of the chart's scales.
type Config struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// DefaultConfig returns the page's standard chart geometry.
func DefaultConfig() Config {
	return Config{
		Width:        chart.DefaultWidth,
		Height:       chart.DefaultHeight,
		MarginTop:    10,
		MarginRight:  30,
		MarginBottom: 25,
		MarginLeft:   50,
	}
}

type focusState struct {
	point models.DataPoint
	x     float64
	y     float64
}

// SVG renders one chart. It implements chart.Renderer.
type SVG struct {
	mu sync.Mutex

	cfg       Config
	entity    models.Entity
	series    models.Series
	hasValues bool
	fmt       units.Formatter

	domain   models.TimeDomain
	valueMax float64
	focus    *focusState
}

var _ chart.Renderer = (*SVG)(nil)

// New creates an SVG renderer for one entity's series.
func New(cfg Config, entity models.Entity, s models.Series) *SVG {
	return &SVG{
		cfg:       cfg,
		entity:    entity,
		series:    s,
		hasValues: s.HasValues(),
		fmt:       units.ForKind(entity.Unit),
		domain:    s.Extent(),
		valueMax:  scale.VisibleValueMax(s, s.Extent()),
	}
}

// ApplyDomain stores the domain and value bound for the next Render.
func (r *SVG) ApplyDomain(domain models.TimeDomain, valueMax float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.domain = domain
	r.valueMax = valueMax
}

// MoveFocus places the focus marker and tooltip.
func (r *SVG) MoveFocus(point models.DataPoint, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.focus = &focusState{point: point, x: x, y: y}
}

// ClearFocus removes the focus marker and tooltip.
func (r *SVG) ClearFocus() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.focus = nil
}

// ClearBrush removes the brush selection overlay. The overlay itself is
// drawn by the interactive client, so server-side SVG output has nothing
// to erase.
func (r *SVG) ClearBrush() {}

// Render emits the chart as a complete SVG document reflecting the last
// applied domain, value bound, and focus state.
func (r *SVG) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	x := scale.NewTimeScale(r.domain, 0, r.cfg.Width)
	status := scale.NewLinear(0, 1, r.cfg.Height, 0)

	var value *scale.Linear
	if r.hasValues {
		value = scale.NewLinear(0, r.valueMax, r.cfg.Height, 0)
	}

	var b strings.Builder

	outerW := r.cfg.Width + r.cfg.MarginLeft + r.cfg.MarginRight
	outerH := r.cfg.Height + r.cfg.MarginTop + r.cfg.MarginBottom

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`, outerW, outerH)
	fmt.Fprintf(&b, `<g transform="translate(%.0f,%.0f)">`, r.cfg.MarginLeft, r.cfg.MarginTop)

	r.writeXAxis(&b, x)
	r.writeStatusAxis(&b, status)

	if value != nil {
		r.writeValueAxis(&b, value)
	}

	r.writeStatusPath(&b, x, status)

	if value != nil {
		r.writeValuePath(&b, x, value)
	}

	if r.focus != nil {
		r.writeFocus(&b)
	}

	b.WriteString("</g></svg>")

	return b.String()
}

func (r *SVG) writeXAxis(b *strings.Builder, x *scale.TimeScale) {
	fmt.Fprintf(b, `<g class="axis x"><path d="M0,%.0fH%.0f"></path>`, r.cfg.Height, r.cfg.Width)

	span := r.domain.Width()
	if span > 0 {
		step := span / time.Duration(xTickCount-1)
		for i := 0; i < xTickCount; i++ {
			t := r.domain.Start.Add(time.Duration(i) * step)
			px := x.Project(t)
			fmt.Fprintf(b, `<text x="%.1f" y="%.0f" text-anchor="middle">%s</text>`,
				px, r.cfg.Height+18, t.Format(xTickFormat))
		}
	}

	b.WriteString("</g>")
}

func (r *SVG) writeStatusAxis(b *strings.Builder, status *scale.Linear) {
	b.WriteString(`<g class="axis status">`)

	for _, v := range []float64{0, 0.5, 1} {
		fmt.Fprintf(b, `<text x="-8" y="%.1f" text-anchor="end">%.0f%%</text>`,
			status.Project(v)+4, v*100)
	}

	b.WriteString("</g>")
}

func (r *SVG) writeValueAxis(b *strings.Builder, value *scale.Linear) {
	b.WriteString(`<g class="axis value">`)

	step := r.valueMax / float64(valueTickCount-1)
	for i := 0; i < valueTickCount; i++ {
		v := step * float64(i)
		fmt.Fprintf(b, `<text x="%.0f" y="%.1f" text-anchor="start">%s</text>`,
			r.cfg.Width+8, value.Project(v)+4, r.fmt.Format(v))
	}

	b.WriteString("</g>")
}

func (r *SVG) writeStatusPath(b *strings.Builder, x *scale.TimeScale, status *scale.Linear) {
	b.WriteString(`<path class="line status" fill="none" d="`)

	for i := range r.series {
		p := &r.series[i]
		cmd := "L"

		if i == 0 {
			cmd = "M"
		}

		fmt.Fprintf(b, "%s%.1f,%.1f", cmd, x.Project(p.Timestamp), status.Project(p.OK))
	}

	b.WriteString(`"></path>`)
}

// writeValuePath draws the value line, breaking visual continuity at
// points whose value is undefined instead of failing or bridging them.
func (r *SVG) writeValuePath(b *strings.Builder, x *scale.TimeScale, value *scale.Linear) {
	b.WriteString(`<path class="line value" fill="none" d="`)

	pen := false

	for i := range r.series {
		p := &r.series[i]

		if !p.HasValue() {
			pen = false
			continue
		}

		cmd := "L"
		if !pen {
			cmd = "M"
			pen = true
		}

		fmt.Fprintf(b, "%s%.1f,%.1f", cmd, x.Project(p.Timestamp), value.Project(*p.Value))
	}

	b.WriteString(`"></path>`)
}

func (r *SVG) writeFocus(b *strings.Builder) {
	f := r.focus

	fmt.Fprintf(b, `<circle class="focus" cx="%.1f" cy="%.1f" r="%d"></circle>`,
		f.x, f.y, markerRadius)
	fmt.Fprintf(b, `<text class="tooltip" x="%.1f" y="%.1f">%s</text>`,
		f.x+8, f.y-8, r.tooltipText(&f.point))
}

// tooltipText builds the hover label: timestamp, reliability, and the
// measured value in display units when the point carries one.
func (r *SVG) tooltipText(p *models.DataPoint) string {
	text := fmt.Sprintf("%s %.0f%%", p.Timestamp.Format(xTickFormat), p.OK*100)

	if p.HasValue() {
		text += " " + r.fmt.Format(*p.Value)

		if key := r.fmt.DisplayKey(); key != "" {
			text += " " + key
		}
	}

	return text
}

// Factory returns a chart.RendererFactory producing SVG renderers with a
// shared geometry config.
func Factory(cfg Config) chart.RendererFactory {
	return func(_ string, entity models.Entity, s models.Series) chart.Renderer {
		return New(cfg, entity, s)
	}
}
