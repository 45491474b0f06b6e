package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/segue-audio/segue/internal/core/domain"
)

// GetArtist retrieves artist metadata (popularity, followers, genre tags).
func (c *Client) GetArtist(ctx context.Context, artistID string) (domain.Artist, error) {
	var sa spotifyFullArtist
	if err := c.getJSON(ctx, fmt.Sprintf("%s/artists/%s", c.baseURL, artistID), &sa); err != nil {
		var se statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return domain.Artist{}, domain.ErrNotFound
		}
		return domain.Artist{}, err
	}
	return mapArtistToDomain(sa), nil
}

// GetRelatedArtists retrieves artists similar to the given one. Best
// effort by contract: callers treat an error as an empty list.
func (c *Client) GetRelatedArtists(ctx context.Context, artistID string) ([]domain.Artist, error) {
	var body struct {
		Artists []spotifyFullArtist `json:"artists"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/artists/%s/related-artists", c.baseURL, artistID), &body); err != nil {
		return nil, err
	}

	artists := make([]domain.Artist, 0, len(body.Artists))
	for _, sa := range body.Artists {
		artists = append(artists, mapArtistToDomain(sa))
	}
	return artists, nil
}
