package web

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
	"github.com/CommanderStorm/navigatum-data/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	data := map[string]*model.Entry{
		"0101": {
			ID:   "0101",
			Type: model.TypeBuilding,
			Name: "Main building",
			Props: model.Props{
				Floors: []model.FloorDetail{{
					ID: 0, Floor: "0", TUMonline: "EG",
					Type: model.FloorGround, Name: localize.Mark("Ground floor"),
				}},
			},
		},
		"0101.EG.001": {
			ID:   "0101.EG.001",
			Type: model.TypeRoom,
			Name: "Seminar room",
		},
	}
	if err := s.WriteCatalog(data, ""); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	return &Server{Store: s, Addr: "localhost:0"}
}

func TestHandleEntries(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/entries", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entries []entrySummary
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "0101" {
		t.Errorf("expected entries sorted by id, got %q first", entries[0].ID)
	}
}

func TestHandleEntriesTypeFilter(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/entries?type=room", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var entries []entrySummary
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "room" {
		t.Errorf("expected only the room entry, got %+v", entries)
	}
}

func TestHandleEntry(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/entries/0101", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entry model.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if entry.Name != "Main building" {
		t.Errorf("expected Main building, got %q", entry.Name)
	}
}

func TestHandleEntryNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/entries/missing", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 404 {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleFloors(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/floors?building=0101", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var floors []model.FloorDetail
	if err := json.Unmarshal(w.Body.Bytes(), &floors); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(floors) != 1 || floors[0].TUMonline != "EG" {
		t.Errorf("expected the EG floor, got %+v", floors)
	}
}

func TestHandleFloorsMissingParam(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/floors", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
