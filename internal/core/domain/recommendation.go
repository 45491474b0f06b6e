package domain

import "time"

// Recommendation is one ranked similar-track entry. Distance is the
// Euclidean distance to the seed vector in the fixed feature space.
type Recommendation struct {
	TrackID    string
	Title      string
	Artist     string
	Distance   float64
	PreviewURL string
	// MeasuredEnergy is filled in after the fact by the preview analysis
	// worker; nil until (and unless) a preview was analyzed.
	MeasuredEnergy *float64
}

// RecommendationSet is the persisted outcome of one recommendation
// request. Items is ordered ascending by distance, holds at most six
// entries and never contains the seed track.
type RecommendationSet struct {
	ID          string
	SeedTrackID string
	SeedTitle   string
	SeedArtist  string
	CreatedAt   time.Time
	Items       []Recommendation
}
