package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	"github.com/Yumax-panda/MK8DX-discordbot/app/shared"
)

// ResultsHandler serves a guild's registered match results.
type ResultsHandler struct {
	Service resultsservice.Service
}

// ListResults returns the guild's results as JSON, or as a workbook
// when format=xlsx is requested. since accepts the same loose date
// text as the bot commands.
func (h *ResultsHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	var since *time.Time
	if text := r.URL.Query().Get("since"); text != "" {
		parsed, err := resultsservice.ParseWhen(text, time.Now())
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to parse since: %v", err), http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	if r.URL.Query().Get("format") == "xlsx" {
		data, err := h.Service.ExportXLSX(r.Context(), guildID)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to export results: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
		w.Write(data)
		return
	}

	results, err := h.Service.List(r.Context(), guildID, since)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch results: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// GetChart renders the guild's score differential history as a PNG.
func (h *ResultsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	png, err := h.Service.DifferentialChart(r.Context(), guildID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// DeleteResult removes one registered result.
func (h *ResultsHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	guildID := shared.GuildID(chi.URLParam(r, "guildID"))

	id, err := strconv.ParseInt(chi.URLParam(r, "resultID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid result id", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(r.Context(), guildID, id); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete result: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Routes sets up the routes for the results controller.
func (h *ResultsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{guildID}", h.ListResults)
	r.Get("/{guildID}/chart", h.GetChart)
	r.Delete("/{guildID}/{resultID}", h.DeleteResult)
	return r
}
