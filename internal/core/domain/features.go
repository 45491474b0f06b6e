package domain

import "math"

// NumFeatures is the fixed dimensionality of every feature vector.
// Vectors of different lengths are never compared, by construction.
const NumFeatures = 11

// Feature dimension indices, in canonical order. The order is part of the
// schema contract: two vectors are only comparable because both follow it.
const (
	DimDanceability = iota
	DimEnergy
	DimKey
	DimLoudness
	DimMode
	DimSpeechiness
	DimAcousticness
	DimInstrumentalness
	DimLiveness
	DimValence
	DimTempo
)

// FeatureNames lists the canonical dimension names, index-aligned with the
// Dim* constants.
var FeatureNames = [NumFeatures]string{
	"danceability",
	"energy",
	"key",
	"loudness",
	"mode",
	"speechiness",
	"acousticness",
	"instrumentalness",
	"liveness",
	"valence",
	"tempo",
}

// Normalization constants for raw analysis values.
const (
	// TempoDivisor maps BPM into [0,1]; anything above 200 BPM clamps to 1.
	TempoDivisor = 200.0
	// LoudnessRange maps dBFS loudness (typically -60..0) into [0,1].
	LoudnessRange = 60.0
	// KeyMax is the highest pitch class; keys normalize by /11.
	KeyMax = 11.0
)

// neutralMidpoint fills dimensions with no signal at all.
const neutralMidpoint = 0.5

// FeatureVector is an ordered, fixed-length audio feature descriptor.
// Every dimension is in [0,1] after construction. Vectors are value types
// and are never mutated after they are built.
type FeatureVector [NumFeatures]float64

// VectorFromMap builds a vector from a partial name->value mapping.
// Missing dimensions and NaN values take the neutral midpoint 0.5.
// It never fails.
func VectorFromMap(values map[string]float64) FeatureVector {
	var v FeatureVector
	for i, name := range FeatureNames {
		val, ok := values[name]
		if !ok || math.IsNaN(val) {
			v[i] = neutralMidpoint
			continue
		}
		v[i] = Clamp01(val)
	}
	return v
}

// Clamp01 pins x to the [0,1] interval.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
