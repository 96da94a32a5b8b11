package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

type frame struct {
	domain models.TimeDomain
	eased  float64
	final  bool
}

func domains(start, end time.Duration) models.TimeDomain {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.TimeDomain{Start: base.Add(start), End: base.Add(end)}
}

func TestAnimator_LastFrameIsTarget(t *testing.T) {
	clk := clock.NewFake()
	a := New(clk)

	from := domains(0, 24*time.Hour)
	to := domains(6*time.Hour, 12*time.Hour)

	var frames []frame

	a.Animate(from, to, func(d models.TimeDomain, eased float64, final bool) {
		frames = append(frames, frame{domain: d, eased: eased, final: final})
	})

	// Nothing fires before the first interval elapses.
	assert.Empty(t, frames)

	clk.Advance(Duration)

	require.NotEmpty(t, frames)
	assert.Len(t, frames, int(Duration/FrameInterval))

	last := frames[len(frames)-1]
	assert.True(t, last.final)
	assert.Equal(t, to, last.domain)
	assert.Equal(t, 1.0, last.eased)

	for _, f := range frames[:len(frames)-1] {
		assert.False(t, f.final)
	}
}

func TestAnimator_EasedProgressMonotonic(t *testing.T) {
	clk := clock.NewFake()
	a := New(clk)

	var eased []float64

	a.Animate(domains(0, time.Hour), domains(time.Hour, 2*time.Hour),
		func(_ models.TimeDomain, e float64, _ bool) {
			eased = append(eased, e)
		})

	clk.Advance(Duration)

	require.NotEmpty(t, eased)

	for i := 1; i < len(eased); i++ {
		assert.Greater(t, eased[i], eased[i-1])
	}

	// Cubic easing starts slow: the first frame covers far less than its
	// linear share of the distance.
	assert.Less(t, eased[0], 1.0/float64(len(eased)))
}

func TestAnimator_MidpointIsHalfway(t *testing.T) {
	clk := clock.NewFake()
	a := New(clk)

	from := domains(0, 0)
	to := domains(10*time.Hour, 10*time.Hour)

	var mid models.TimeDomain

	a.Animate(from, to, func(d models.TimeDomain, eased float64, _ bool) {
		if eased > 0.49 && eased < 0.51 {
			mid = d
		}
	})

	clk.Advance(Duration)

	// easeInOutCubic(0.5) == 0.5, so the temporal midpoint lands halfway
	// between the endpoints.
	require.False(t, mid.Start.IsZero())
	assert.WithinDuration(t, domains(5*time.Hour, 5*time.Hour).Start, mid.Start, time.Minute)
}

func TestAnimator_NewerAnimationSupersedes(t *testing.T) {
	clk := clock.NewFake()
	a := New(clk)

	first := domains(0, time.Hour)
	second := domains(2*time.Hour, 3*time.Hour)

	var got []models.TimeDomain

	record := func(d models.TimeDomain, _ float64, _ bool) {
		got = append(got, d)
	}

	a.Animate(domains(0, 24*time.Hour), first, record)
	clk.Advance(Duration / 2)

	before := len(got)
	require.NotZero(t, before)

	a.Animate(got[len(got)-1], second, record)
	clk.Advance(Duration)

	// The first animation never delivers its target; the second does.
	assert.NotEqual(t, first, got[len(got)-1])
	assert.Equal(t, second, got[len(got)-1])
}

func TestAnimator_NilFrameIgnored(t *testing.T) {
	clk := clock.NewFake()
	a := New(clk)

	assert.NotPanics(t, func() {
		a.Animate(domains(0, time.Hour), domains(0, 2*time.Hour), nil)
		clk.Advance(Duration)
	})
}
