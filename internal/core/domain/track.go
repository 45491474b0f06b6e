package domain

// Track identifies a catalog track in the domain layer. It is produced by
// the catalog adapter and read-only to the recommendation core.
type Track struct {
	ID         string
	Title      string
	Artist     string // primary artist display name
	ArtistID   string // optional
	AlbumID    string // optional
	Popularity int    // 0-100
	Explicit   bool
	DurationMs int
	// ReleaseYear is year-resolution; 0 when the catalog omits it.
	ReleaseYear int
	// Genres are lower-cased free-text tags inherited from the primary
	// artist. Often empty on search results until the artist is fetched.
	Genres     []string
	PreviewURL string
}

// Artist carries the artist-level signals the estimator consumes.
type Artist struct {
	ID         string
	Name       string
	Popularity int // 0-100
	Followers  int
	Genres     []string
}
