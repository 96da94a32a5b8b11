package brush

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreeman451/statusgraph/pkg/clock"
	"github.com/mfreeman451/statusgraph/pkg/models"
)

// pixelInvert maps pixel x directly to seconds since the epoch, which
// keeps selection arithmetic readable in the tests below.
func pixelInvert(px float64) time.Time {
	return time.Unix(int64(px), 0).UTC()
}

type recorder struct {
	zooms  []models.TimeDomain
	resets int
}

func newMachine(t *testing.T, clk *clock.Fake) (*Machine, *recorder) {
	t.Helper()

	rec := &recorder{}

	m, err := New(Config{
		Clock:  clk,
		Invert: pixelInvert,
		OnZoom: func(d models.TimeDomain) {
			rec.zooms = append(rec.zooms, d)
		},
		OnReset: func() {
			rec.resets++
		},
	})
	require.NoError(t, err)

	return m, rec
}

func TestMachine_Zoom(t *testing.T) {
	clk := clock.NewFake()
	m, rec := newMachine(t, clk)

	m.DragStart()
	assert.Equal(t, Brushing, m.State())
	assert.True(t, m.Focused())

	m.DragEnd(100, 200, false)

	assert.Equal(t, Idle, m.State())
	assert.False(t, m.Focused())
	require.Len(t, rec.zooms, 1)
	assert.Equal(t, pixelInvert(100), rec.zooms[0].Start)
	assert.Equal(t, pixelInvert(200), rec.zooms[0].End)
	assert.Zero(t, rec.resets)
}

func TestMachine_ReversedSelectionNormalizes(t *testing.T) {
	clk := clock.NewFake()
	m, rec := newMachine(t, clk)

	m.DragStart()
	m.DragEnd(200, 100, false)

	require.Len(t, rec.zooms, 1)
	assert.True(t, rec.zooms[0].Start.Before(rec.zooms[0].End))
}

func TestMachine_EmptySelectionDebounce(t *testing.T) {
	t.Run("reset fires after the full delay", func(t *testing.T) {
		clk := clock.NewFake()
		m, rec := newMachine(t, clk)

		m.DragStart()
		m.DragEnd(0, 0, true)
		assert.Equal(t, PendingReset, m.State())

		clk.Advance(ResetDelay - time.Millisecond)
		assert.Zero(t, rec.resets)

		clk.Advance(2 * time.Millisecond)
		assert.Equal(t, 1, rec.resets)
		assert.Equal(t, Idle, m.State())
	})

	t.Run("brush start just before the deadline cancels", func(t *testing.T) {
		clk := clock.NewFake()
		m, rec := newMachine(t, clk)

		m.DragStart()
		m.DragEnd(0, 0, true)

		clk.Advance(349 * time.Millisecond)
		m.DragStart()

		// The stale timer still fires; the generation guard makes it a
		// no-op instead of assuming it cancelled itself.
		clk.Advance(10 * time.Millisecond)
		assert.Zero(t, rec.resets)
		assert.Equal(t, Brushing, m.State())
	})

	t.Run("brush start just after the deadline is too late", func(t *testing.T) {
		clk := clock.NewFake()
		m, rec := newMachine(t, clk)

		m.DragStart()
		m.DragEnd(0, 0, true)

		clk.Advance(351 * time.Millisecond)
		assert.Equal(t, 1, rec.resets)
	})
}

func TestMachine_ZeroWidthSelectionIsEmpty(t *testing.T) {
	clk := clock.NewFake()
	m, rec := newMachine(t, clk)

	m.DragStart()
	// Both bounds invert to the same second, so the selection is
	// zero-width in time even though the pixel bounds differ slightly.
	m.DragEnd(100.2, 100.4, false)

	assert.Equal(t, PendingReset, m.State())
	assert.Empty(t, rec.zooms)

	clk.Advance(ResetDelay)
	assert.Equal(t, 1, rec.resets)
}

func TestMachine_SupersededTimerIsNoOp(t *testing.T) {
	clk := clock.NewFake()
	m, rec := newMachine(t, clk)

	// First empty selection arms a timer; a second drag and empty
	// selection arms another. Only the newest may reset, exactly once.
	m.DragStart()
	m.DragEnd(0, 0, true)
	clk.Advance(100 * time.Millisecond)

	m.DragStart()
	m.DragEnd(0, 0, true)

	clk.Advance(ResetDelay)
	assert.Equal(t, 1, rec.resets)

	clk.Advance(time.Second)
	assert.Equal(t, 1, rec.resets)
}

func TestMachine_DragEndWithoutStartIgnored(t *testing.T) {
	clk := clock.NewFake()
	m, rec := newMachine(t, clk)

	m.DragEnd(100, 200, false)

	assert.Equal(t, Idle, m.State())
	assert.Empty(t, rec.zooms)
}

func TestMachine_RequiresInvert(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilInvert)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "brushing", Brushing.String())
	assert.Equal(t, "pending-reset", PendingReset.String())
}
