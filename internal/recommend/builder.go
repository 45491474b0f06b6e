package recommend

import (
	"context"
	"log"

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
)

const (
	// maxExtractionPool caps how many gathered candidates even enter
	// feature extraction.
	maxExtractionPool = 80
	// maxFeaturized stops candidate processing once this many rows have
	// been featurized, bounding worst-case latency.
	maxFeaturized = 40
)

// MatrixRow pairs a track with its comparable feature vector.
type MatrixRow struct {
	Track  domain.Track
	Vector domain.FeatureVector
}

// FeatureMatrix holds the seed row followed by candidate rows. Row 0 is
// always the seed; every vector shares the fixed schema dimensionality.
type FeatureMatrix struct {
	Rows []MatrixRow
}

// Seed returns the seed row. Only valid on a matrix produced by Build.
func (m FeatureMatrix) Seed() MatrixRow {
	return m.Rows[0]
}

// Builder produces feature matrices via extract-with-fallback: the
// authoritative analysis source first, the heuristic estimator when that
// signals unavailable.
type Builder struct {
	catalog  ports.CatalogProvider
	analysis ports.AnalysisProvider
}

func NewBuilder(catalog ports.CatalogProvider, analysis ports.AnalysisProvider) *Builder {
	return &Builder{catalog: catalog, analysis: analysis}
}

// Build featurizes the seed and the candidate pool in pool order.
//
// Seed failure is fatal (domain.ErrNoSeedFeatures); a per-candidate
// failure only skips that candidate. Candidates matching the seed id are
// skipped, and processing stops once maxFeaturized rows exist. Fewer than
// two total rows is reported as domain.ErrInsufficientData even though
// nothing "went wrong": ranking has nothing to compare.
//
// Artist lookups are memoized in a map scoped to this single call; the
// memo is never reused across requests.
func (b *Builder) Build(ctx context.Context, seed domain.Track, pool []domain.Track) (FeatureMatrix, error) {
	artistMemo := make(map[string]*domain.Artist)

	seedVec, ok := b.featurize(ctx, seed, artistMemo)
	if !ok {
		return FeatureMatrix{}, domain.ErrNoSeedFeatures
	}
	rows := make([]MatrixRow, 0, maxFeaturized+1)
	rows = append(rows, MatrixRow{Track: seed, Vector: seedVec})

	if len(pool) > maxExtractionPool {
		pool = pool[:maxExtractionPool]
	}
	for _, cand := range pool {
		if len(rows)-1 >= maxFeaturized {
			break
		}
		if cand.ID == seed.ID {
			continue
		}
		vec, ok := b.featurize(ctx, cand, artistMemo)
		if !ok {
			log.Printf("WARN recommend: no features for candidate %s, skipping", cand.ID)
			continue
		}
		rows = append(rows, MatrixRow{Track: cand, Vector: vec})
	}

	if len(rows) < 2 {
		return FeatureMatrix{}, domain.ErrInsufficientData
	}
	return FeatureMatrix{Rows: rows}, nil
}

// featurize tries the primary analysis source, then the heuristic
// estimator. The heuristic never fails, so the only unfeaturizable track
// is one without an identity to hash.
func (b *Builder) featurize(ctx context.Context, t domain.Track, memo map[string]*domain.Artist) (domain.FeatureVector, bool) {
	if t.ID == "" {
		return domain.FeatureVector{}, false
	}
	if b.analysis != nil {
		if vec, ok := b.analysis.TrackFeatures(ctx, t.ID); ok {
			return vec, true
		}
	}
	return EstimateFeatures(t, b.artistInfo(ctx, t.ArtistID, memo)), true
}

// artistInfo fetches artist metadata at most once per id per build. A
// failed lookup is memoized as nil so it is not retried within the call.
func (b *Builder) artistInfo(ctx context.Context, artistID string, memo map[string]*domain.Artist) *domain.Artist {
	if artistID == "" {
		return nil
	}
	if a, seen := memo[artistID]; seen {
		return a
	}
	artist, err := b.catalog.GetArtist(ctx, artistID)
	if err != nil {
		log.Printf("WARN recommend: artist %s lookup failed: %v", artistID, err)
		memo[artistID] = nil
		return nil
	}
	memo[artistID] = &artist
	return &artist
}
