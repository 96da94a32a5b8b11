package chart

import (
	"sort"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/bus"
	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

// AggregateID identifies the mean-reliability chart on every page.
const AggregateID = "average"

// RendererFactory builds the renderer for one chart of a page.
type RendererFactory func(id string, entity models.Entity, s models.Series) Renderer

// PageConfig describes a full page of charts: the aggregate plus one
// chart per monitored entity, all sharing one fresh bus.
type PageConfig struct {
	Entities    []models.Entity
	Series      map[string]models.Series
	Aggregate   models.Series
	Width       float64
	Height      float64
	Clock       clock.Clock
	NewRenderer RendererFactory
}

// Page groups the synchronized charts of one rendered page. It is
// discarded and rebuilt whenever the surrounding UI tears the charts
// down, for example when switching monitored project.
type Page struct {
	bus    *bus.Bus
	charts []*Chart
	byID   map[string]*Chart
}

// NewPage instantiates the aggregate chart followed by one chart per
// entity, in stable name order, on a new bus.
func NewPage(cfg PageConfig) (*Page, error) {
	if len(cfg.Aggregate) == 0 {
		return nil, ErrNoAggregate
	}

	if cfg.NewRenderer == nil {
		return nil, ErrNilRenderer
	}

	p := &Page{
		bus:  bus.New(),
		byID: make(map[string]*Chart),
	}

	aggregate := models.Entity{Name: AggregateID, Title: "Average"}

	if err := p.add(Config{
		ID:       AggregateID,
		Entity:   aggregate,
		Series:   cfg.Aggregate,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Clock:    cfg.Clock,
		Renderer: cfg.NewRenderer(AggregateID, aggregate, cfg.Aggregate),
	}); err != nil {
		return nil, err
	}

	entities := append([]models.Entity(nil), cfg.Entities...)
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Name < entities[j].Name
	})

	for _, entity := range entities {
		s := cfg.Series[entity.Name]
		if len(s) == 0 {
			continue
		}

		if err := p.add(Config{
			ID:       entity.Name,
			Entity:   entity,
			Series:   s,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Clock:    cfg.Clock,
			Renderer: cfg.NewRenderer(entity.Name, entity, s),
		}); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Page) add(cfg Config) error {
	cfg.Bus = p.bus

	c, err := New(cfg)
	if err != nil {
		return err
	}

	p.charts = append(p.charts, c)
	p.byID[c.ID()] = c

	return nil
}

// Bus returns the page's synchronization bus.
func (p *Page) Bus() *bus.Bus {
	return p.bus
}

// Chart returns the chart with the given identifier.
func (p *Page) Chart(id string) (*Chart, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// Charts returns the page's charts, aggregate first.
func (p *Page) Charts() []*Chart {
	return p.charts
}

// SetWindow applies a relative duration window through the aggregate
// chart; the bus brings every sibling along.
func (p *Page) SetWindow(d time.Duration) {
	p.charts[0].SetWindow(d)
}
