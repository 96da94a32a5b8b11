package checker

import "github.com/mfreeman451/statusgraph/pkg/models"

// Snapshot is one project's worth of check data: the monitored entities
// and each entity's raw check records, keyed by entity name.
type Snapshot struct {
	Entities []models.Entity                 `json:"entities"`
	Checks   map[string][]models.CheckRecord `json:"checks"`
}
