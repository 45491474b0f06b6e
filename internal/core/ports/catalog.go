package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/segue-audio/segue/internal/core/domain"
)

// ErrNoConfidentMatch indicates search results did not meet the confidence threshold.
var ErrNoConfidentMatch = errors.New("no confident match")

// NoConfidentMatchError provides context for a failed track match.
type NoConfidentMatchError struct {
	Query string
}

func (e NoConfidentMatchError) Error() string {
	if e.Query == "" {
		return ErrNoConfidentMatch.Error()
	}
	return fmt.Sprintf("no confident match found for query %q", e.Query)
}

func (e NoConfidentMatchError) Is(target error) bool {
	return target == ErrNoConfidentMatch
}

// CatalogProvider is the outbound port to the track catalog service.
//
// SearchTracks and GetRelatedArtists are best-effort: the recommendation
// core treats a failure as an empty result for that call and keeps going.
// GetTrack and GetArtist return domain.ErrNotFound for unknown ids.
type CatalogProvider interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
	GetTrack(ctx context.Context, trackID string) (domain.Track, error)
	GetArtist(ctx context.Context, artistID string) (domain.Artist, error)
	GetRelatedArtists(ctx context.Context, artistID string) ([]domain.Artist, error)
	// FindTrack resolves a free-text query to the best-matching track,
	// or a NoConfidentMatchError when nothing scores above the match
	// threshold.
	FindTrack(ctx context.Context, query string) (domain.Track, error)
}
