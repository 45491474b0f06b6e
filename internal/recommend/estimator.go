// Package recommend implements the similar-track recommendation core:
// heuristic feature estimation from catalog metadata, candidate pool
// gathering, feature matrix construction with primary-then-heuristic
// fallback, and k-nearest-neighbor ranking against the seed track.
package recommend

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/segue-audio/segue/internal/core/domain"
)

// Estimation constants. Base values are linear in normalized popularity;
// the remaining dimensions start from fixed priors and are shaped by the
// genre/era/duration rules below.
const (
	danceabilityBase  = 0.3
	danceabilitySlope = 0.4
	energyBase        = 0.4
	energySlope       = 0.3
	valenceBase       = 0.25
	valenceSlope      = 0.35
	loudnessBase      = 0.45
	loudnessSlope     = 0.2

	speechinessDefault  = 0.1
	speechinessExplicit = 0.25
	acousticnessDefault = 0.3
	instrumentalDefault = 0.2
	tempoDefault        = 0.5

	livenessFloor          = 0.1
	livenessFollowersScale = 0.15
	livenessFollowersCap   = 5_000_000.0

	jitterSpan = 0.1 // jitter is drawn from [-0.05, +0.05)
)

// EstimateFeatures synthesizes a full feature vector from track and
// (optional) artist metadata when authoritative analysis is unavailable.
//
// The function is fully deterministic: the same track and artist inputs
// always produce a bit-identical vector. The track id and title feed a
// stable hash that decides mode, key and per-dimension jitter; they carry
// no semantic weight. A nil artist degrades to fixed defaults and never
// fails.
func EstimateFeatures(track domain.Track, artist *domain.Artist) domain.FeatureVector {
	pop := float64(track.Popularity) / 100
	if track.Popularity == 0 && artist != nil {
		pop = float64(artist.Popularity) / 100
	}

	followers := 0
	genres := track.Genres
	if artist != nil {
		followers = artist.Followers
		if len(genres) == 0 {
			genres = artist.Genres
		}
	}

	var v domain.FeatureVector
	v[domain.DimDanceability] = danceabilityBase + danceabilitySlope*pop
	v[domain.DimEnergy] = energyBase + energySlope*pop
	v[domain.DimValence] = valenceBase + valenceSlope*pop
	v[domain.DimLoudness] = loudnessBase + loudnessSlope*pop
	v[domain.DimSpeechiness] = speechinessDefault
	if track.Explicit {
		v[domain.DimSpeechiness] = speechinessExplicit
	}
	v[domain.DimAcousticness] = acousticnessDefault
	v[domain.DimInstrumentalness] = instrumentalDefault
	v[domain.DimLiveness] = livenessFloor +
		livenessFollowersScale*math.Min(1, float64(followers)/livenessFollowersCap)
	v[domain.DimTempo] = tempoDefault

	// Mode and key are pseudo-random but reproducible: hashed from the
	// track's name and id, never from a time-seeded source.
	h := stableHash(track.Title + "|" + track.ID)
	v[domain.DimMode] = float64(h % 2)
	v[domain.DimKey] = float64((h / 2) % 12) / domain.KeyMax

	applyGenreAdjustments(&v, genres)
	applyEraAdjustment(&v, track.ReleaseYear)
	applyDurationAdjustment(&v, track.DurationMs)
	applyPopularityRefinement(&v, pop)

	for i := range v {
		v[i] = domain.Clamp01(v[i] + jitter(track.ID, i))
	}
	return v
}

// applyGenreAdjustments accumulates the deltas of every rule whose keyword
// appears in any genre tag. Multiple matches add up; each addition clamps
// so a stack of strong genres saturates instead of overflowing.
func applyGenreAdjustments(v *domain.FeatureVector, genres []string) {
	for _, tag := range genres {
		tag = strings.ToLower(tag)
		for _, rule := range genreRules {
			if !strings.Contains(tag, rule.keyword) {
				continue
			}
			for _, d := range rule.deltas {
				v[d.dim] = domain.Clamp01(v[d.dim] + d.delta)
			}
		}
	}
}

// applyEraAdjustment shifts dimensions by release-year bracket. Brackets
// are checked newest-first and exactly one applies; a zero year (unknown)
// applies none.
func applyEraAdjustment(v *domain.FeatureVector, year int) {
	switch {
	case year == 0:
	case year >= 2020:
		v[domain.DimDanceability] = domain.Clamp01(v[domain.DimDanceability] + 0.1)
		v[domain.DimEnergy] = domain.Clamp01(v[domain.DimEnergy] + 0.05)
	case year >= 2010:
		v[domain.DimEnergy] = domain.Clamp01(v[domain.DimEnergy] + 0.1)
	case year <= 1990:
		v[domain.DimAcousticness] = domain.Clamp01(v[domain.DimAcousticness] + 0.2)
		v[domain.DimLiveness] = domain.Clamp01(v[domain.DimLiveness] + 0.1)
	}
}

func applyDurationAdjustment(v *domain.FeatureVector, durationMs int) {
	switch {
	case durationMs > 300_000:
		v[domain.DimInstrumentalness] = domain.Clamp01(v[domain.DimInstrumentalness] + 0.1)
		v[domain.DimEnergy] = domain.Clamp01(v[domain.DimEnergy] - 0.05)
	case durationMs < 120_000:
		v[domain.DimEnergy] = domain.Clamp01(v[domain.DimEnergy] + 0.1)
		v[domain.DimDanceability] = domain.Clamp01(v[domain.DimDanceability] + 0.1)
	}
}

func applyPopularityRefinement(v *domain.FeatureVector, pop float64) {
	switch {
	case pop > 0.8:
		v[domain.DimDanceability] = domain.Clamp01(v[domain.DimDanceability] + 0.1)
		v[domain.DimValence] = domain.Clamp01(v[domain.DimValence] + 0.1)
	case pop < 0.3:
		v[domain.DimAcousticness] = domain.Clamp01(v[domain.DimAcousticness] + 0.1)
		v[domain.DimInstrumentalness] = domain.Clamp01(v[domain.DimInstrumentalness] + 0.05)
	}
}

// jitter derives a value in [-0.05, +0.05) from the track id and the
// dimension's position. It decorrelates tracks with near-identical
// metadata without introducing real randomness.
func jitter(trackID string, dim int) float64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(trackID))
	_, _ = hasher.Write([]byte("|"))
	_, _ = hasher.Write([]byte(strconv.Itoa(dim)))
	// Top 53 bits give a uniform float in [0,1).
	frac := float64(hasher.Sum64()>>11) / (1 << 53)
	return jitterSpan*frac - jitterSpan/2
}

func stableHash(s string) uint32 {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(s))
	return hasher.Sum32()
}
