package spotify

import (
	"testing"

	"github.com/segue-audio/segue/internal/core/domain"
)

func TestNormalizeSearchInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and trims", input: "  Blinding Lights  ", want: "blinding lights"},
		{name: "strips bracketed segments", input: "One More Time (2001 Remaster)", want: "one more time"},
		{name: "drops noise tokens", input: "Get Lucky feat Pharrell Williams Radio Edit", want: "get lucky pharrell williams"},
		{name: "collapses separators", input: "AC/DC - Back in Black", want: "ac dc back in black"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeSearchInput(tt.input); got != tt.want {
				t.Fatalf("normalize %q: got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "abc", b: "", want: 3},
		{a: "", b: "abc", want: 3},
		{a: "kitten", b: "sitting", want: 3},
		{a: "same", b: "same", want: 0},
	}

	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Fatalf("distance(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchScore(t *testing.T) {
	candidate := domain.Track{Title: "Blinding Lights", Artist: "The Weeknd"}

	tests := []struct {
		name      string
		query     string
		confident bool
	}{
		{name: "title then artist", query: "blinding lights the weeknd", confident: true},
		{name: "artist then title", query: "the weeknd blinding lights", confident: true},
		{name: "title only", query: "blinding lights", confident: true},
		{name: "unrelated query", query: "bohemian rhapsody queen", confident: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := matchScore(tt.query, candidate)
			if (score >= findMatchThreshold) != tt.confident {
				t.Fatalf("score %.2f for %q, confident want %v", score, tt.query, tt.confident)
			}
		})
	}
}

func TestMatchScoreEmptyCandidate(t *testing.T) {
	if got := matchScore("anything", domain.Track{}); got != 0 {
		t.Fatalf("empty candidate: got %.2f, want 0", got)
	}
}
