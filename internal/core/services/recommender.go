package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
	"github.com/segue-audio/segue/internal/recommend"
)

// PreviewQueue accepts non-blocking preview-analysis jobs for recommended
// tracks. Implemented by the worker pool; nil disables preview analysis.
type PreviewQueue interface {
	Submit(recommendationID, trackID, previewURL string)
}

// Recommender coordinates the recommendation pipeline: resolve the seed,
// gather candidates, build the feature matrix, rank, persist.
type Recommender struct {
	catalog  ports.CatalogProvider
	gatherer *recommend.Gatherer
	builder  *recommend.Builder
	history  ports.HistoryRepository
	previews PreviewQueue
}

// NewRecommender constructs a Recommender. history and previews may be nil
// to disable persistence and preview analysis respectively.
func NewRecommender(catalog ports.CatalogProvider, analysis ports.AnalysisProvider, history ports.HistoryRepository, previews PreviewQueue) *Recommender {
	return &Recommender{
		catalog:  catalog,
		gatherer: recommend.NewGatherer(catalog),
		builder:  recommend.NewBuilder(catalog, analysis),
		history:  history,
		previews: previews,
	}
}

// RecommendSimilar returns up to six tracks closest to the seed in feature
// space. It always completes with a set: "nothing found" is an empty Items
// list, never an error. The single error path is a blank seed id, which is
// a caller bug.
func (r *Recommender) RecommendSimilar(ctx context.Context, seedTrackID string) (domain.RecommendationSet, error) {
	if strings.TrimSpace(seedTrackID) == "" {
		return domain.RecommendationSet{}, fmt.Errorf("service: %w", domain.ErrInvalidSeed)
	}

	seed, err := r.catalog.GetTrack(ctx, seedTrackID)
	if err != nil {
		log.Printf("WARN service: seed track %s unavailable: %v", seedTrackID, err)
		return domain.RecommendationSet{SeedTrackID: seedTrackID, CreatedAt: time.Now().UTC()}, nil
	}

	return r.recommendForSeed(ctx, seed)
}

// RecommendSimilarByQuery resolves free text to a seed track first, then
// recommends. An unresolvable query yields an empty set, not an error.
func (r *Recommender) RecommendSimilarByQuery(ctx context.Context, query string) (domain.RecommendationSet, error) {
	if strings.TrimSpace(query) == "" {
		return domain.RecommendationSet{}, fmt.Errorf("service: empty query: %w", domain.ErrInvalidSeed)
	}

	seed, err := r.catalog.FindTrack(ctx, query)
	if err != nil {
		log.Printf("WARN service: could not resolve query %q to a track: %v", query, err)
		return domain.RecommendationSet{CreatedAt: time.Now().UTC()}, nil
	}

	return r.recommendForSeed(ctx, seed)
}

// GetRecommendation looks up a previously served set by id.
func (r *Recommender) GetRecommendation(ctx context.Context, id string) (domain.RecommendationSet, error) {
	if r.history == nil {
		return domain.RecommendationSet{}, domain.ErrNotFound
	}
	return r.history.GetRecommendation(ctx, id)
}

func (r *Recommender) recommendForSeed(ctx context.Context, seed domain.Track) (domain.RecommendationSet, error) {
	empty := domain.RecommendationSet{
		SeedTrackID: seed.ID,
		SeedTitle:   seed.Title,
		SeedArtist:  seed.Artist,
		CreatedAt:   time.Now().UTC(),
	}

	pool := r.gatherer.Gather(ctx, seed)

	matrix, err := r.builder.Build(ctx, seed, pool)
	if err != nil {
		// Insufficient data is a user-visible "no recommendations"
		// outcome, not a failure of the request.
		if errors.Is(err, domain.ErrNoSeedFeatures) || errors.Is(err, domain.ErrInsufficientData) {
			log.Printf("WARN service: no recommendations for seed %s: %v", seed.ID, err)
			return empty, nil
		}
		return domain.RecommendationSet{}, fmt.Errorf("service: build feature matrix: %w", err)
	}

	set := domain.RecommendationSet{
		ID:          uuid.NewString(),
		SeedTrackID: seed.ID,
		SeedTitle:   seed.Title,
		SeedArtist:  seed.Artist,
		CreatedAt:   time.Now().UTC(),
		Items:       recommend.Rank(matrix),
	}

	if r.history != nil {
		if err := r.history.SaveRecommendation(ctx, set); err != nil {
			log.Printf("WARN service: failed to persist recommendation %s: %v", set.ID, err)
		} else if r.previews != nil {
			for _, item := range set.Items {
				if item.PreviewURL != "" {
					r.previews.Submit(set.ID, item.TrackID, item.PreviewURL)
				}
			}
		}
	}

	return set, nil
}
