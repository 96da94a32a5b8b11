package series

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

func TestNormalize(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sorts by timestamp and coerces ok", func(t *testing.T) {
		records := []models.CheckRecord{
			{Timestamp: base.Add(2 * time.Hour), OK: true},
			{Timestamp: base, OK: false},
			{Timestamp: base.Add(time.Hour), OK: true, Value: floatPtr(42)},
		}

		s := Normalize(records)
		require.Len(t, s, 3)

		assert.Equal(t, base, s[0].Timestamp)
		assert.Equal(t, 0.0, s[0].OK)
		assert.Equal(t, base.Add(time.Hour), s[1].Timestamp)
		assert.Equal(t, 1.0, s[1].OK)
		require.NotNil(t, s[1].Value)
		assert.Equal(t, 42.0, *s[1].Value)
		assert.Equal(t, base.Add(2*time.Hour), s[2].Timestamp)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Normalize(nil))
	})
}

func TestAggregate(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("mean over reporting entities only", func(t *testing.T) {
		entitySeries := map[string]models.Series{
			"a": {{Timestamp: base, OK: 1}},
			"b": {{Timestamp: base, OK: 0}},
			"c": {{Timestamp: base, OK: 1}},
		}

		agg := Aggregate(entitySeries)
		require.Len(t, agg, 1)

		assert.InDelta(t, 0.667, agg[0].OK, 0.001)
		assert.Equal(t, map[string]float64{"b": 0}, agg[0].ComponentStatus)
	})

	t.Run("entities missing a report are excluded from the mean", func(t *testing.T) {
		later := base.Add(time.Hour)
		entitySeries := map[string]models.Series{
			"a": {{Timestamp: base, OK: 1}, {Timestamp: later, OK: 0}},
			"b": {{Timestamp: base, OK: 0}},
		}

		agg := Aggregate(entitySeries)
		require.Len(t, agg, 2)

		// base: both report, mean 0.5
		assert.Equal(t, base, agg[0].Timestamp)
		assert.InDelta(t, 0.5, agg[0].OK, 0.0001)
		// later: only a reports, mean is a's 0
		assert.Equal(t, later, agg[1].Timestamp)
		assert.Equal(t, 0.0, agg[1].OK)
		assert.Equal(t, map[string]float64{"a": 0}, agg[1].ComponentStatus)
	})

	t.Run("length equals distinct timestamp count", func(t *testing.T) {
		entitySeries := map[string]models.Series{
			"a": {{Timestamp: base, OK: 1}, {Timestamp: base.Add(time.Hour), OK: 1}},
			"b": {{Timestamp: base, OK: 1}, {Timestamp: base.Add(2 * time.Hour), OK: 1}},
		}

		agg := Aggregate(entitySeries)
		assert.Len(t, agg, 3)
	})

	t.Run("nominal timestamps carry no component status", func(t *testing.T) {
		entitySeries := map[string]models.Series{
			"a": {{Timestamp: base, OK: 1}},
			"b": {{Timestamp: base, OK: 1}},
		}

		agg := Aggregate(entitySeries)
		require.Len(t, agg, 1)

		assert.Equal(t, 1.0, agg[0].OK)
		assert.Nil(t, agg[0].ComponentStatus)
	})

	t.Run("output is ordered by timestamp", func(t *testing.T) {
		entitySeries := map[string]models.Series{
			"a": {
				{Timestamp: base, OK: 1},
				{Timestamp: base.Add(time.Hour), OK: 0},
				{Timestamp: base.Add(2 * time.Hour), OK: 1},
			},
		}

		agg := Aggregate(entitySeries)
		require.Len(t, agg, 3)

		for i := 1; i < len(agg); i++ {
			assert.True(t, agg[i].Timestamp.After(agg[i-1].Timestamp))
		}
	})
}

func TestBuild(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	raw := map[string][]models.CheckRecord{
		"a": {{Timestamp: base.Add(time.Hour), OK: true}, {Timestamp: base, OK: false}},
	}

	built := Build(raw)
	require.Len(t, built, 1)
	require.Len(t, built["a"], 2)
	assert.Equal(t, base, built["a"][0].Timestamp)
}
