package recommend

import "github.com/segue-audio/segue/internal/core/domain"

// dimDelta is a single additive adjustment to one feature dimension.
type dimDelta struct {
	dim   int
	delta float64
}

// genreRule adds per-dimension deltas when its keyword appears as a
// substring of an artist genre tag. Rules are an ordered slice, not a map:
// clamping happens after every addition, so evaluation order is part of
// the deterministic contract.
type genreRule struct {
	keyword string
	deltas  []dimDelta
}

var genreRules = []genreRule{
	{"electronic", []dimDelta{
		{domain.DimDanceability, 0.4}, {domain.DimEnergy, 0.3},
		{domain.DimInstrumentalness, 0.3}, {domain.DimAcousticness, -0.3},
	}},
	{"edm", []dimDelta{
		{domain.DimDanceability, 0.4}, {domain.DimEnergy, 0.4},
		{domain.DimValence, 0.2}, {domain.DimAcousticness, -0.3},
		{domain.DimTempo, 0.1},
	}},
	{"house", []dimDelta{
		{domain.DimDanceability, 0.35}, {domain.DimEnergy, 0.25},
		{domain.DimTempo, 0.1}, {domain.DimAcousticness, -0.2},
	}},
	{"techno", []dimDelta{
		{domain.DimDanceability, 0.3}, {domain.DimEnergy, 0.35},
		{domain.DimInstrumentalness, 0.3}, {domain.DimTempo, 0.15},
		{domain.DimAcousticness, -0.3},
	}},
	{"dance", []dimDelta{
		{domain.DimDanceability, 0.35}, {domain.DimEnergy, 0.25},
		{domain.DimValence, 0.15},
	}},
	{"pop", []dimDelta{
		{domain.DimDanceability, 0.2}, {domain.DimEnergy, 0.1},
		{domain.DimValence, 0.2},
	}},
	{"rock", []dimDelta{
		{domain.DimEnergy, 0.3}, {domain.DimLoudness, 0.2},
		{domain.DimAcousticness, -0.2}, {domain.DimLiveness, 0.1},
	}},
	{"metal", []dimDelta{
		{domain.DimEnergy, 0.45}, {domain.DimLoudness, 0.3},
		{domain.DimValence, -0.15}, {domain.DimAcousticness, -0.35},
		{domain.DimTempo, 0.15},
	}},
	{"punk", []dimDelta{
		{domain.DimEnergy, 0.4}, {domain.DimLoudness, 0.25},
		{domain.DimTempo, 0.2}, {domain.DimValence, -0.05},
	}},
	{"hip hop", []dimDelta{
		{domain.DimDanceability, 0.3}, {domain.DimSpeechiness, 0.3},
		{domain.DimEnergy, 0.15},
	}},
	{"rap", []dimDelta{
		{domain.DimSpeechiness, 0.35}, {domain.DimDanceability, 0.25},
		{domain.DimEnergy, 0.1},
	}},
	{"r&b", []dimDelta{
		{domain.DimDanceability, 0.2}, {domain.DimValence, 0.1},
		{domain.DimEnergy, -0.05}, {domain.DimAcousticness, 0.1},
	}},
	{"jazz", []dimDelta{
		{domain.DimAcousticness, 0.3}, {domain.DimInstrumentalness, 0.3},
		{domain.DimEnergy, -0.15}, {domain.DimDanceability, -0.1},
	}},
	{"classical", []dimDelta{
		{domain.DimAcousticness, 0.45}, {domain.DimInstrumentalness, 0.45},
		{domain.DimEnergy, -0.3}, {domain.DimDanceability, -0.3},
		{domain.DimLoudness, -0.2},
	}},
	{"acoustic", []dimDelta{
		{domain.DimAcousticness, 0.45}, {domain.DimEnergy, -0.2},
		{domain.DimLoudness, -0.1},
	}},
	{"folk", []dimDelta{
		{domain.DimAcousticness, 0.4}, {domain.DimEnergy, -0.15},
		{domain.DimValence, 0.05}, {domain.DimInstrumentalness, 0.1},
	}},
	{"country", []dimDelta{
		{domain.DimAcousticness, 0.25}, {domain.DimValence, 0.15},
		{domain.DimDanceability, 0.1},
	}},
	{"ambient", []dimDelta{
		{domain.DimInstrumentalness, 0.4}, {domain.DimEnergy, -0.35},
		{domain.DimAcousticness, 0.2}, {domain.DimDanceability, -0.25},
		{domain.DimTempo, -0.15},
	}},
	{"indie", []dimDelta{
		{domain.DimAcousticness, 0.15}, {domain.DimEnergy, -0.05},
		{domain.DimValence, 0.05},
	}},
}
