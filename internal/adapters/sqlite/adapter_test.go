package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segue-audio/segue/internal/core/domain"
)

func testSet() domain.RecommendationSet {
	return domain.RecommendationSet{
		ID:          "rec-1",
		SeedTrackID: "seed-1",
		SeedTitle:   "Midnight City",
		SeedArtist:  "M83",
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Items: []domain.Recommendation{
			{TrackID: "t1", Title: "Song One", Artist: "Artist A", Distance: 0.12, PreviewURL: "https://cdn.test/1.mp3"},
			{TrackID: "t2", Title: "Song Two", Artist: "Artist B", Distance: 0.34},
			{TrackID: "t3", Title: "Song Three", Artist: "Artist C", Distance: 0.56},
		},
	}
}

func TestAdapter_GetRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, a *Adapter) string
		wantErr   error
		wantItems int
	}{
		{
			name: "not found",
			setup: func(t *testing.T, a *Adapter) string {
				return "missing"
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "returns set with items in rank order",
			setup: func(t *testing.T, a *Adapter) string {
				set := testSet()
				if err := a.SaveRecommendation(context.Background(), set); err != nil {
					t.Fatalf("save recommendation: %v", err)
				}
				return set.ID
			},
			wantItems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAdapter(":memory:")
			if err != nil {
				t.Fatalf("new adapter: %v", err)
			}
			defer a.Close()

			id := tt.setup(t, a)
			got, err := a.GetRecommendation(context.Background(), id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.SeedTrackID != "seed-1" || got.SeedTitle != "Midnight City" {
				t.Fatalf("seed fields not populated: %+v", got)
			}
			if !got.CreatedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
				t.Fatalf("created_at: got %v", got.CreatedAt)
			}
			if len(got.Items) != tt.wantItems {
				t.Fatalf("items: got %d, want %d", len(got.Items), tt.wantItems)
			}
			for i := 1; i < len(got.Items); i++ {
				if got.Items[i-1].Distance > got.Items[i].Distance {
					t.Fatalf("items out of rank order: %+v", got.Items)
				}
			}
			if got.Items[0].PreviewURL != "https://cdn.test/1.mp3" {
				t.Fatalf("preview url not round-tripped: %+v", got.Items[0])
			}
			if got.Items[0].MeasuredEnergy != nil {
				t.Fatalf("expected nil measured energy, got %v", *got.Items[0].MeasuredEnergy)
			}
		})
	}
}

func TestAdapter_SaveRecommendationReplacesItems(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	set := testSet()
	if err := a.SaveRecommendation(context.Background(), set); err != nil {
		t.Fatalf("save recommendation: %v", err)
	}

	set.Items = set.Items[:1]
	if err := a.SaveRecommendation(context.Background(), set); err != nil {
		t.Fatalf("re-save recommendation: %v", err)
	}

	got, err := a.GetRecommendation(context.Background(), set.ID)
	if err != nil {
		t.Fatalf("get recommendation: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items after re-save: got %d, want 1", len(got.Items))
	}
}

func TestAdapter_UpdateTrackEnergy(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	set := testSet()
	if err := a.SaveRecommendation(context.Background(), set); err != nil {
		t.Fatalf("save recommendation: %v", err)
	}

	if err := a.UpdateTrackEnergy(context.Background(), set.ID, "t2", 0.42); err != nil {
		t.Fatalf("update energy: %v", err)
	}

	got, err := a.GetRecommendation(context.Background(), set.ID)
	if err != nil {
		t.Fatalf("get recommendation: %v", err)
	}
	if got.Items[1].MeasuredEnergy == nil {
		t.Fatal("expected measured energy to be set")
	}
	if *got.Items[1].MeasuredEnergy != 0.42 {
		t.Fatalf("measured energy: got %v, want 0.42", *got.Items[1].MeasuredEnergy)
	}
	if got.Items[0].MeasuredEnergy != nil {
		t.Fatal("other items should be untouched")
	}

	if err := a.UpdateTrackEnergy(context.Background(), set.ID, "nope", 0.1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown track, got %v", err)
	}
}
