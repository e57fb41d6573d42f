package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	guildservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/application"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// GuildHandler serves per-guild settings.
type GuildHandler struct {
	Service guildservice.Service
}

// GetSettings returns the guild's configuration, defaults included.
func (h *GuildHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	config, err := h.Service.GetConfig(r.Context(), guildID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch settings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(config); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// UpdateTagDto represents the input data for updating the team tag.
type UpdateTagDto struct {
	TeamTag string `json:"team_tag"`
}

// UpdateTag updates the guild's team tag.
func (h *GuildHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	var input UpdateTagDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Service.SetTeamTag(r.Context(), guildID, input.TeamTag); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update team tag: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UpdateLocaleDto represents the input data for updating the locale.
type UpdateLocaleDto struct {
	IsJA bool `json:"is_ja"`
}

// UpdateLocale updates the guild's summary language.
func (h *GuildHandler) UpdateLocale(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	var input UpdateLocaleDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Service.SetLocale(r.Context(), guildID, input.IsJA); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update locale: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Routes sets up the routes for the guild settings controller.
func (h *GuildHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{guildID}/settings", h.GetSettings)
	r.Put("/{guildID}/settings/tag", h.UpdateTag)
	r.Put("/{guildID}/settings/locale", h.UpdateLocale)
	return r
}
