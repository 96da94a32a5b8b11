package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestTimeScale(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	domain := models.TimeDomain{Start: start, End: end}

	t.Run("project maps domain onto pixel range", func(t *testing.T) {
		s := NewTimeScale(domain, 0, 800)

		assert.Equal(t, 0.0, s.Project(start))
		assert.Equal(t, 800.0, s.Project(end))
		assert.Equal(t, 400.0, s.Project(start.Add(12*time.Hour)))
	})

	t.Run("project and invert are mutual inverses", func(t *testing.T) {
		s := NewTimeScale(domain, 0, 800)

		for _, px := range []float64{0, 1, 133.7, 400, 799, 800} {
			inverted := s.Invert(px)
			assert.InDelta(t, px, s.Project(inverted), 0.0001, "pixel %v", px)
		}

		for _, offset := range []time.Duration{0, time.Second, 3 * time.Hour, 24 * time.Hour} {
			ts := start.Add(offset)
			roundTrip := s.Invert(s.Project(ts))
			assert.WithinDuration(t, ts, roundTrip, time.Millisecond)
		}
	})

	t.Run("set domain replaces the mapping", func(t *testing.T) {
		s := NewTimeScale(domain, 0, 800)

		sub := models.TimeDomain{
			Start: start.Add(6 * time.Hour),
			End:   start.Add(18 * time.Hour),
		}
		s.SetDomain(sub)

		assert.Equal(t, sub, s.Domain())
		assert.Equal(t, 0.0, s.Project(sub.Start))
		assert.Equal(t, 800.0, s.Project(sub.End))
	})

	t.Run("reversed bounds are normalized", func(t *testing.T) {
		s := NewTimeScale(domain, 0, 800)

		s.SetDomain(models.TimeDomain{Start: end, End: start})

		got := s.Domain()
		assert.True(t, got.Start.Before(got.End) || got.Start.Equal(got.End))
		assert.Equal(t, start, got.Start)
	})

	t.Run("degenerate domain projects to range start", func(t *testing.T) {
		s := NewTimeScale(models.TimeDomain{Start: start, End: start}, 0, 800)

		assert.Equal(t, 0.0, s.Project(start.Add(time.Hour)))
	})
}

func TestLinear(t *testing.T) {
	t.Run("status scale maps [0,1] to [height,0]", func(t *testing.T) {
		s := NewLinear(0, 1, 120, 0)

		assert.Equal(t, 120.0, s.Project(0))
		assert.Equal(t, 0.0, s.Project(1))
		assert.Equal(t, 60.0, s.Project(0.5))
	})

	t.Run("invert round trip", func(t *testing.T) {
		s := NewLinear(0, 500, 120, 0)

		for _, v := range []float64{0, 17.5, 250, 500} {
			assert.InDelta(t, v, s.Invert(s.Project(v)), 0.0001)
		}
	})

	t.Run("set domain max rescales", func(t *testing.T) {
		s := NewLinear(0, 100, 120, 0)
		s.SetDomainMax(200)

		assert.Equal(t, 200.0, s.DomainMax())
		assert.Equal(t, 60.0, s.Project(100))
	})
}

func TestVisibleValueMax(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	s := models.Series{
		{Timestamp: base, OK: 1, Value: floatPtr(10)},
		{Timestamp: base.Add(time.Hour), OK: 1, Value: floatPtr(50), Max: floatPtr(80)},
		{Timestamp: base.Add(2 * time.Hour), OK: 1, Value: floatPtr(30)},
	}

	t.Run("max over visible points prefers max over value", func(t *testing.T) {
		full := s.Extent()
		assert.Equal(t, 80.0, VisibleValueMax(s, full))
	})

	t.Run("zoom excludes out-of-domain points", func(t *testing.T) {
		sub := models.TimeDomain{
			Start: base.Add(90 * time.Minute),
			End:   base.Add(3 * time.Hour),
		}
		assert.Equal(t, 30.0, VisibleValueMax(s, sub))
	})

	t.Run("sentinel when nothing visible carries a value", func(t *testing.T) {
		bare := models.Series{{Timestamp: base, OK: 1}}
		require.Equal(t, float64(DefaultValueMax), VisibleValueMax(bare, bare.Extent()))

		empty := models.TimeDomain{
			Start: base.Add(10 * time.Hour),
			End:   base.Add(11 * time.Hour),
		}
		assert.Equal(t, float64(DefaultValueMax), VisibleValueMax(s, empty))
	})
}
