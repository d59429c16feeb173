package web

import (
	"fmt"
	"net/http"

	"github.com/CommanderStorm/navigatum-data/internal/store"
)

// Server serves the enriched catalog as a read-only JSON API.
type Server struct {
	Store *store.Store
	Addr  string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, s.Handler())
}

// Handler builds the API routing mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/entries", s.handleEntries)
	mux.HandleFunc("/api/entries/", s.handleEntry)
	mux.HandleFunc("/api/floors", s.handleFloors)
	return mux
}
