package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/segue-audio/segue/internal/core/domain"
)

// GetTrack retrieves a single track by id.
func (c *Client) GetTrack(ctx context.Context, trackID string) (domain.Track, error) {
	var st spotifyTrack
	if err := c.getJSON(ctx, fmt.Sprintf("%s/tracks/%s", c.baseURL, trackID), &st); err != nil {
		var se statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return domain.Track{}, domain.ErrNotFound
		}
		return domain.Track{}, err
	}
	return mapTrackToDomain(st), nil
}
