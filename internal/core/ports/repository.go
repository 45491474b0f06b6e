package ports

import (
	"context"

	"github.com/segue-audio/segue/internal/core/domain"
)

// HistoryRepository persists served recommendation sets for later lookup.
// It is an audit log, not a feature cache: the estimation pipeline never
// reads it back.
type HistoryRepository interface {
	SaveRecommendation(ctx context.Context, set domain.RecommendationSet) error
	GetRecommendation(ctx context.Context, id string) (domain.RecommendationSet, error)
	// UpdateTrackEnergy records the preview-measured energy for one
	// recommended track inside a stored set.
	UpdateTrackEnergy(ctx context.Context, recommendationID, trackID string, energy float64) error
}
