// Package series normalizes raw reliability checks into per-entity and
// aggregate chart series.
package series

import (
	"sort"
	"time"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

// Normalize converts an entity's raw check records into an ordered series.
// Records are sorted by timestamp and the pass/fail bit is coerced to 0/1.
func Normalize(records []models.CheckRecord) models.Series {
	out := make(models.Series, 0, len(records))

	for _, r := range records {
		p := models.DataPoint{
			Timestamp: r.Timestamp,
			Value:     r.Value,
			Max:       r.Max,
		}
		if r.OK {
			p.OK = 1
		}

		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}

// Build normalizes every entity's raw records.
func Build(raw map[string][]models.CheckRecord) map[string]models.Series {
	out := make(map[string]models.Series, len(raw))

	for name, records := range raw {
		out[name] = Normalize(records)
	}

	return out
}

// Aggregate derives the mean-reliability series across all entities.
//
// For each distinct timestamp in the union of the entity series, OK is the
// arithmetic mean over exactly the entities that reported at that
// timestamp. ComponentStatus lists every reporting entity whose OK there
// was not 1. A timestamp with zero reporters cannot arise from the union,
// but is dropped if it does since its mean is undefined.
func Aggregate(entitySeries map[string]models.Series) models.Series {
	type sample struct {
		entity string
		ok     float64
	}

	byTime := make(map[time.Time][]sample)

	for name, s := range entitySeries {
		for i := range s {
			ts := s[i].Timestamp
			byTime[ts] = append(byTime[ts], sample{entity: name, ok: s[i].OK})
		}
	}

	stamps := make([]time.Time, 0, len(byTime))
	for ts := range byTime {
		stamps = append(stamps, ts)
	}

	sort.Slice(stamps, func(i, j int) bool {
		return stamps[i].Before(stamps[j])
	})

	out := make(models.Series, 0, len(stamps))

	for _, ts := range stamps {
		samples := byTime[ts]
		if len(samples) == 0 {
			continue
		}

		var sum float64

		var degraded map[string]float64

		for _, s := range samples {
			sum += s.ok

			if s.ok != 1 {
				if degraded == nil {
					degraded = make(map[string]float64)
				}

				degraded[s.entity] = s.ok
			}
		}

		out = append(out, models.DataPoint{
			Timestamp:       ts,
			OK:              sum / float64(len(samples)),
			ComponentStatus: degraded,
		})
	}

	return out
}
