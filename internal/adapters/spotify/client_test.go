package spotify

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
)

func newTestClient(handler http.HandlerFunc) (*Client, func()) {
	ts := httptest.NewServer(handler)
	client := NewClientWithHTTP(ts.Client(), ts.URL)
	return client, ts.Close
}

func TestSearchTracksParsesResults(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "track" {
			t.Fatalf("type param: got %q, want track", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Fatalf("limit param: got %q, want 10", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracks": {"items": [{
				"id": "track-1",
				"name": "Midnight City",
				"popularity": 82,
				"explicit": false,
				"duration_ms": 243960,
				"preview_url": "https://cdn.example/preview.mp3",
				"artists": [{"id": "artist-1", "name": "M83"}],
				"album": {"id": "album-1", "release_date": "2011-10-18"}
			}]}
		}`))
	})
	defer closeFn()

	tracks, err := client.SearchTracks(context.Background(), "midnight city", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("results: got %d, want 1", len(tracks))
	}

	track := tracks[0]
	if track.ID != "track-1" || track.Title != "Midnight City" || track.Artist != "M83" {
		t.Fatalf("unexpected track %+v", track)
	}
	if track.ArtistID != "artist-1" || track.AlbumID != "album-1" {
		t.Fatalf("unexpected ids %+v", track)
	}
	if track.ReleaseYear != 2011 {
		t.Fatalf("release year: got %d, want 2011", track.ReleaseYear)
	}
	if track.PreviewURL != "https://cdn.example/preview.mp3" {
		t.Fatalf("preview url: got %q", track.PreviewURL)
	}
}

func TestSearchTracksClampsLimit(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Fatalf("limit param: got %q, want 50", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tracks": {"items": []}}`))
	})
	defer closeFn()

	if _, err := client.SearchTracks(context.Background(), "q", 500); err != nil {
		t.Fatalf("search: %v", err)
	}
}

func TestGetTrackNotFound(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer closeFn()

	_, err := client.GetTrack(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetArtistParsesMetadata(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artists/artist-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "artist-1",
			"name": "M83",
			"popularity": 74,
			"followers": {"total": 2500000},
			"genres": ["Synthpop", "Dream Pop"]
		}`))
	})
	defer closeFn()

	artist, err := client.GetArtist(context.Background(), "artist-1")
	if err != nil {
		t.Fatalf("get artist: %v", err)
	}
	if artist.Followers != 2500000 || artist.Popularity != 74 {
		t.Fatalf("unexpected artist %+v", artist)
	}
	if len(artist.Genres) != 2 || artist.Genres[0] != "synthpop" {
		t.Fatalf("genres not lowercased: %v", artist.Genres)
	}
}

func TestTrackFeaturesNormalizesRanges(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio-features/track-1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "track-1",
			"danceability": 0.72,
			"energy": 0.81,
			"key": 11,
			"loudness": -6.0,
			"mode": 1,
			"speechiness": 0.05,
			"acousticness": 0.01,
			"instrumentalness": 0.4,
			"liveness": 0.12,
			"valence": 0.6,
			"tempo": 105.0
		}`))
	})
	defer closeFn()

	vec, ok := client.TrackFeatures(context.Background(), "track-1")
	if !ok {
		t.Fatal("expected features to be available")
	}

	checks := map[int]float64{
		domain.DimDanceability: 0.72,
		domain.DimKey:          1.0,
		domain.DimLoudness:     (-6.0 + 60) / 60,
		domain.DimMode:         1.0,
		domain.DimTempo:        105.0 / 200,
	}
	for dim, want := range checks {
		if got := vec[dim]; math.Abs(got-want) > 1e-9 {
			t.Fatalf("%s: got %.4f, want %.4f", domain.FeatureNames[dim], got, want)
		}
	}
}

func TestTrackFeaturesUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "access denied",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			name: "all-zero payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "track-1"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, closeFn := newTestClient(tt.handler)
			defer closeFn()

			vec, ok := client.TrackFeatures(context.Background(), "track-1")
			if ok {
				t.Fatal("expected unavailable signal")
			}
			if vec != (domain.FeatureVector{}) {
				t.Fatalf("expected zero vector, got %v", vec)
			}
		})
	}
}

func TestFindTrackPicksBestMatch(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracks": {"items": [
				{"id": "t1", "name": "Blinding Lights (Live)", "artists": [{"id": "a1", "name": "Cover Band"}], "album": {"id": "al1"}},
				{"id": "t2", "name": "Blinding Lights", "artists": [{"id": "a2", "name": "The Weeknd"}], "album": {"id": "al2"}}
			]}
		}`))
	})
	defer closeFn()

	track, err := client.FindTrack(context.Background(), "blinding lights the weeknd")
	if err != nil {
		t.Fatalf("find track: %v", err)
	}
	if track.ID != "t2" {
		t.Fatalf("best match: got %s, want t2", track.ID)
	}
}

func TestFindTrackNoConfidentMatch(t *testing.T) {
	client, closeFn := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracks": {"items": [
				{"id": "t1", "name": "Something Else Entirely", "artists": [{"id": "a1", "name": "Nobody"}], "album": {"id": "al1"}}
			]}
		}`))
	})
	defer closeFn()

	_, err := client.FindTrack(context.Background(), "xyzzy plugh quux")
	if !errors.Is(err, ports.ErrNoConfidentMatch) {
		t.Fatalf("expected ErrNoConfidentMatch, got %v", err)
	}
}
