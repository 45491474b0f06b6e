package spotify

// Wire types mirroring the Spotify Web API response shapes. Only the
// fields the adapter maps are declared.

type spotifyArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type spotifyAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// ReleaseDate has day, month or year precision ("2021-03-05",
	// "2021-03", "2021"); the mapper only keeps the year.
	ReleaseDate string `json:"release_date"`
}

type spotifyTrack struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Popularity int                `json:"popularity"`
	Explicit   bool               `json:"explicit"`
	DurationMs int                `json:"duration_ms"`
	PreviewURL string             `json:"preview_url"`
	Artists    []spotifyArtistRef `json:"artists"`
	Album      spotifyAlbum       `json:"album"`
}

type spotifyFullArtist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
	Genres []string `json:"genres"`
}

type spotifyAudioFeatures struct {
	ID               string  `json:"id"`
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Key              int     `json:"key"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
}
