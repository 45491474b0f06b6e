package spotify

import (
	"strconv"
	"strings"

	"github.com/segue-audio/segue/internal/core/domain"
)

// mapTrackToDomain converts a raw Spotify track to a clean domain track.
// Genre tags are not part of track responses; they are inherited later
// from the primary artist when the estimator needs them.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	var artistName, artistID string
	if len(st.Artists) > 0 {
		artistName = st.Artists[0].Name
		artistID = st.Artists[0].ID
	}

	return domain.Track{
		ID:          st.ID,
		Title:       st.Name,
		Artist:      artistName,
		ArtistID:    artistID,
		AlbumID:     st.Album.ID,
		Popularity:  st.Popularity,
		Explicit:    st.Explicit,
		DurationMs:  st.DurationMs,
		ReleaseYear: parseReleaseYear(st.Album.ReleaseDate),
		PreviewURL:  st.PreviewURL,
	}
}

// parseReleaseYear extracts the year from a day/month/year precision
// release date. Returns 0 when the field is absent or malformed.
func parseReleaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

func mapArtistToDomain(sa spotifyFullArtist) domain.Artist {
	genres := make([]string, 0, len(sa.Genres))
	for _, g := range sa.Genres {
		genres = append(genres, strings.ToLower(g))
	}

	return domain.Artist{
		ID:         sa.ID,
		Name:       sa.Name,
		Popularity: sa.Popularity,
		Followers:  sa.Followers.Total,
		Genres:     genres,
	}
}

// mapFeaturesToVector normalizes raw analysis sub-ranges into the [0,1]
// schema space: pitch class /11 (midpoint when Spotify reports -1 for
// unknown), loudness shifted out of dBFS by (x+60)/60, tempo /200
// clamped, the rest clamped as-is.
func mapFeaturesToVector(f spotifyAudioFeatures) domain.FeatureVector {
	var v domain.FeatureVector
	v[domain.DimDanceability] = domain.Clamp01(f.Danceability)
	v[domain.DimEnergy] = domain.Clamp01(f.Energy)
	if f.Key < 0 {
		v[domain.DimKey] = 0.5
	} else {
		v[domain.DimKey] = domain.Clamp01(float64(f.Key) / domain.KeyMax)
	}
	v[domain.DimLoudness] = domain.Clamp01((f.Loudness + domain.LoudnessRange) / domain.LoudnessRange)
	v[domain.DimMode] = domain.Clamp01(float64(f.Mode))
	v[domain.DimSpeechiness] = domain.Clamp01(f.Speechiness)
	v[domain.DimAcousticness] = domain.Clamp01(f.Acousticness)
	v[domain.DimInstrumentalness] = domain.Clamp01(f.Instrumentalness)
	v[domain.DimLiveness] = domain.Clamp01(f.Liveness)
	v[domain.DimValence] = domain.Clamp01(f.Valence)
	v[domain.DimTempo] = domain.Clamp01(f.Tempo / domain.TempoDivisor)
	return v
}
