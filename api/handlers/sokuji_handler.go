package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// SokujiHandler serves live score payloads for banner overlays.
type SokujiHandler struct {
	BannerDB sokujidb.BannerDB
}

// GetLive returns the latest score payload pushed for a user.
func (h *SokujiHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	payload, err := h.BannerDB.Get(r.Context(), shared.DiscordID(userID))
	if err != nil {
		if errors.Is(err, sokujidb.ErrNotFound) {
			http.Error(w, "No live match for the provided user", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch live payload: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// Routes sets up the routes for the sokuji controller.
func (h *SokujiHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{userID}", h.GetLive)
	return r
}
