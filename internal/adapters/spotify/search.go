package spotify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
)

const (
	maxSearchLimit = 50
	// findCandidates bounds how many search hits FindTrack scores.
	findCandidates = 5
	// findMatchThreshold is the minimum similarity for a confident match.
	findMatchThreshold = 0.6
)

// SearchTracks runs a catalog search and maps the hits to domain tracks.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = q.Encode()

	var body struct {
		Tracks struct {
			Items []spotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := c.getJSON(ctx, searchURL.String(), &body); err != nil {
		return nil, fmt.Errorf("spotify adapter: search failed: %w", err)
	}

	tracks := make([]domain.Track, 0, len(body.Tracks.Items))
	for _, item := range body.Tracks.Items {
		tracks = append(tracks, mapTrackToDomain(item))
	}
	return tracks, nil
}

// FindTrack resolves a free-text query ("blinding lights the weeknd") to
// the best-matching track. Candidates are scored against the normalized
// query; nothing above the threshold means no confident match.
func (c *Client) FindTrack(ctx context.Context, query string) (domain.Track, error) {
	results, err := c.SearchTracks(ctx, query, findCandidates)
	if err != nil {
		return domain.Track{}, err
	}

	bestScore := 0.0
	bestIndex := -1
	for i, candidate := range results {
		score := matchScore(query, candidate)
		log.Printf("DEBUG spotify adapter: match %s - %s scored %.2f", candidate.Artist, candidate.Title, score)
		if score >= findMatchThreshold && score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		return domain.Track{}, fmt.Errorf("spotify adapter: %w", &ports.NoConfidentMatchError{Query: query})
	}
	return results[bestIndex], nil
}
