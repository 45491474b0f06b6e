package recommend

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/segue-audio/segue/internal/core/domain"
)

// MaxRecommendations caps the ranked output length.
const MaxRecommendations = 6

// Rank orders the candidate rows by Euclidean distance to the seed row
// and returns the min(6, rows-1) closest, ascending. All eleven
// dimensions weigh equally; feature construction already did whatever
// normalization applies.
//
// Ties keep original matrix order (first gathered wins) and the seed is
// excluded by construction. A matrix with fewer than two rows yields an
// empty result, not an error.
func Rank(m FeatureMatrix) []domain.Recommendation {
	if len(m.Rows) < 2 {
		return nil
	}

	seed := m.Rows[0].Vector
	type scoredRow struct {
		row      MatrixRow
		distance float64
	}
	scored := make([]scoredRow, 0, len(m.Rows)-1)
	for _, row := range m.Rows[1:] {
		scored = append(scored, scoredRow{
			row:      row,
			distance: floats.Distance(seed[:], row.Vector[:], 2),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].distance < scored[j].distance
	})

	k := MaxRecommendations
	if len(scored) < k {
		k = len(scored)
	}
	out := make([]domain.Recommendation, 0, k)
	for _, s := range scored[:k] {
		out = append(out, domain.Recommendation{
			TrackID:    s.row.Track.ID,
			Title:      s.row.Track.Title,
			Artist:     s.row.Track.Artist,
			Distance:   s.distance,
			PreviewURL: s.row.Track.PreviewURL,
		})
	}
	return out
}
