package web

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
)

// entrySummary is the listing row of /api/entries.
type entrySummary struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	data, err := s.Store.ReadCatalog()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	typeFilter := r.URL.Query().Get("type")
	entries := []entrySummary{}
	for id, entry := range data {
		if typeFilter != "" && string(entry.Type) != typeFilter {
			continue
		}
		entries = append(entries, entrySummary{ID: id, Type: string(entry.Type), Name: entry.Name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	writeJSON(w, entries)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/entries/")
	if id == "" {
		http.Error(w, "missing entry id", http.StatusBadRequest)
		return
	}

	entry, err := s.Store.ReadEntry(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, entry)
}

func (s *Server) handleFloors(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	if building == "" {
		http.Error(w, "missing 'building' parameter", http.StatusBadRequest)
		return
	}

	entry, err := s.Store.ReadEntry(building)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "building not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if entry.Props.Floors == nil {
		writeJSON(w, []any{})
		return
	}
	writeJSON(w, entry.Props.Floors)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS — this is a local development tool, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
