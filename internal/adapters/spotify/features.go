package spotify

import (
	"context"
	"fmt"
	"log"

	"github.com/segue-audio/segue/internal/core/domain"
)

// TrackFeatures fetches authoritative audio analysis for a track and
// normalizes it into the schema space.
//
// Any failure (transport error, denied or missing analysis, malformed
// payload) returns ok=false. An all-zero analysis response is also
// treated as missing, since Spotify pads some tracks that way.
func (c *Client) TrackFeatures(ctx context.Context, trackID string) (domain.FeatureVector, bool) {
	var f spotifyAudioFeatures
	if err := c.getJSON(ctx, fmt.Sprintf("%s/audio-features/%s", c.baseURL, trackID), &f); err != nil {
		log.Printf("WARN spotify adapter: audio features for %s unavailable: %v", trackID, err)
		return domain.FeatureVector{}, false
	}

	if allFeaturesZero(f) {
		log.Printf("WARN spotify adapter: empty analysis payload for %s, treating as unavailable", trackID)
		return domain.FeatureVector{}, false
	}

	return mapFeaturesToVector(f), true
}

func allFeaturesZero(f spotifyAudioFeatures) bool {
	return f.Danceability == 0 &&
		f.Energy == 0 &&
		f.Valence == 0 &&
		f.Tempo == 0 &&
		f.Instrumentalness == 0 &&
		f.Acousticness == 0
}
