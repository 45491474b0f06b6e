package recommend

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
)

const (
	// maxPoolSize bounds the gathered candidate pool.
	maxPoolSize = 100
	// searchPageLimit is the per-query result cap requested from the catalog.
	searchPageLimit = 50
	// maxRelatedArtistQueries bounds the related-artist sub-list.
	maxRelatedArtistQueries = 5
	// recencyWindowYears sets the span of the leading recency query.
	recencyWindowYears = 4
)

// genreTailQueries is the fixed broad filler appended after the
// artist-specific queries. It guarantees a non-empty pool even when every
// artist lookup fails.
var genreTailQueries = []string{
	"genre:pop",
	"genre:rock",
	"genre:hip-hop",
	"genre:electronic",
	"year:2015-2024",
}

// Gatherer assembles a deduplicated candidate pool from an ordered set of
// catalog queries.
type Gatherer struct {
	catalog ports.CatalogProvider
}

func NewGatherer(catalog ports.CatalogProvider) *Gatherer {
	return &Gatherer{catalog: catalog}
}

// Gather runs the query plan in priority order and accumulates unique
// tracks until the pool cap is reached or the plan is exhausted. The seed
// track never enters the pool. A failing query is skipped, not fatal, so
// Gather itself cannot fail; at worst it returns an empty pool.
//
// Pool order mirrors query priority: same-artist and related-artist
// results come before the generic genre/year filler, so downstream
// early-termination keeps the most relevant candidates.
func (g *Gatherer) Gather(ctx context.Context, seed domain.Track) []domain.Track {
	pool := make([]domain.Track, 0, maxPoolSize)
	seen := map[string]struct{}{seed.ID: {}}

	for _, query := range g.queryPlan(ctx, seed) {
		if len(pool) >= maxPoolSize {
			break
		}
		tracks, err := g.catalog.SearchTracks(ctx, query, searchPageLimit)
		if err != nil {
			log.Printf("WARN recommend: search %q failed, skipping: %v", query, err)
			continue
		}
		for _, t := range tracks {
			if len(pool) >= maxPoolSize {
				break
			}
			if t.ID == "" {
				continue
			}
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}
			pool = append(pool, t)
		}
	}

	return pool
}

// queryPlan builds the ordered query list: recency window, same artist,
// up to five related artists (best effort), then the fixed genre/year tail.
func (g *Gatherer) queryPlan(ctx context.Context, seed domain.Track) []string {
	year := time.Now().Year()
	queries := []string{fmt.Sprintf("year:%d-%d", year-recencyWindowYears, year)}

	if seed.Artist != "" {
		queries = append(queries, fmt.Sprintf("artist:%s", seed.Artist))
	}

	if seed.ArtistID != "" {
		related, err := g.catalog.GetRelatedArtists(ctx, seed.ArtistID)
		if err != nil {
			// Best effort: the related sub-list just shrinks to zero.
			log.Printf("WARN recommend: related artists for %s unavailable: %v", seed.ArtistID, err)
			related = nil
		}
		for i, ra := range related {
			if i >= maxRelatedArtistQueries {
				break
			}
			if ra.Name == "" {
				continue
			}
			queries = append(queries, fmt.Sprintf("artist:%s", ra.Name))
		}
	}

	return append(queries, genreTailQueries...)
}
