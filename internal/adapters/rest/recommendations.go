package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/segue-audio/segue/internal/core/domain"
)

// createRecommendationsRequest defines what the client sends us. Exactly
// one of seed_track_id or query must be set.
type createRecommendationsRequest struct {
	SeedTrackID string `json:"seed_track_id"`
	Query       string `json:"query"`
}

type recommendationItemResponse struct {
	TrackID        string   `json:"track_id"`
	Title          string   `json:"title"`
	Artist         string   `json:"artist"`
	Distance       float64  `json:"distance"`
	PreviewURL     string   `json:"preview_url,omitempty"`
	MeasuredEnergy *float64 `json:"measured_energy,omitempty"`
}

type recommendationSetResponse struct {
	ID          string                       `json:"id,omitempty"`
	SeedTrackID string                       `json:"seed_track_id"`
	SeedTitle   string                       `json:"seed_title,omitempty"`
	SeedArtist  string                       `json:"seed_artist,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	Items       []recommendationItemResponse `json:"items"`
}

// CreateRecommendations handles POST /recommendations
func (h *Handler) CreateRecommendations(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	// 1. Decode the Request Body
	var req createRecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Validate Input
	if req.SeedTrackID == "" && req.Query == "" {
		writeError(w, http.StatusBadRequest, "seed_track_id or query is required")
		return
	}
	if req.SeedTrackID != "" && req.Query != "" {
		writeError(w, http.StatusBadRequest, "seed_track_id and query are mutually exclusive")
		return
	}

	// 3. Call the Service (The Core Logic)
	// We pass the Context so the service can cancel long-running tasks if the user disconnects
	var (
		set domain.RecommendationSet
		err error
	)
	if req.SeedTrackID != "" {
		set, err = h.svc.RecommendSimilar(r.Context(), req.SeedTrackID)
	} else {
		set, err = h.svc.RecommendSimilarByQuery(r.Context(), req.Query)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSeed) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// 4. Return the Response. An empty Items list is a valid outcome, not
	// an error status.
	writeJSON(w, http.StatusOK, toSetResponse(set))
}

// GetRecommendations handles GET /recommendations/{id}
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "recommendation id is required")
		return
	}

	set, err := h.svc.GetRecommendation(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toSetResponse(set))
}

func toSetResponse(set domain.RecommendationSet) recommendationSetResponse {
	items := make([]recommendationItemResponse, 0, len(set.Items))
	for _, item := range set.Items {
		items = append(items, recommendationItemResponse{
			TrackID:        item.TrackID,
			Title:          item.Title,
			Artist:         item.Artist,
			Distance:       item.Distance,
			PreviewURL:     item.PreviewURL,
			MeasuredEnergy: item.MeasuredEnergy,
		})
	}

	return recommendationSetResponse{
		ID:          set.ID,
		SeedTrackID: set.SeedTrackID,
		SeedTitle:   set.SeedTitle,
		SeedArtist:  set.SeedArtist,
		CreatedAt:   set.CreatedAt,
		Items:       items,
	}
}
