package ports

import (
	"context"

	"github.com/segue-audio/segue/internal/core/domain"
)

// AnalysisProvider is the outbound port to the authoritative audio
// analysis source.
//
// TrackFeatures returns (vector, true) on success. Any transport error,
// missing-data response or malformed payload yields (zero, false), an
// explicit "unavailable" signal, never an error. Callers must branch on
// ok rather than inspect the vector: a zero-valued track and a failed
// extraction are different things.
type AnalysisProvider interface {
	TrackFeatures(ctx context.Context, trackID string) (domain.FeatureVector, bool)
}
