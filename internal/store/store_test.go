package store

import (
	"testing"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

func testCatalog() map[string]*model.Entry {
	return map[string]*model.Entry{
		"0101": {
			ID:           "0101",
			Type:         model.TypeBuilding,
			Name:         "Main building",
			ChildrenFlat: []string{"0101.EG.001"},
			Props: model.Props{
				Floors: []model.FloorDetail{{
					ID: 0, Floor: "0", TUMonline: "EG",
					Type: model.FloorGround, Name: localize.Mark("Ground floor"),
				}},
			},
		},
		"0101.EG.001": {
			ID:      "0101.EG.001",
			Type:    model.TypeRoom,
			Name:    "Seminar room",
			Parents: []string{"0101"},
			Props: model.Props{
				IDs: &model.IDProps{Roomcode: "0101.EG.001"},
				Floor: &model.FloorDetail{
					ID: 0, Floor: "0", TUMonline: "EG",
					Type: model.FloorGround, Name: localize.Mark("Ground floor"),
				},
			},
		},
		"campus": {
			ID:       "campus",
			Type:     model.TypeCampus,
			Name:     "City campus",
			Children: []string{"0101"},
		},
	}
}

func TestWriteReadCatalog(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	if err := s.WriteCatalog(testCatalog(), "2026-01-01T00:00:00Z"); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	data, err := s.ReadCatalog()
	if err != nil {
		t.Fatalf("reading catalog: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(data))
	}

	building := data["0101"]
	if building == nil {
		t.Fatal("building 0101 not found")
	}
	if len(building.Props.Floors) != 1 {
		t.Errorf("expected 1 floor on building, got %d", len(building.Props.Floors))
	}
	if building.Props.Floors[0].TUMonline != "EG" {
		t.Errorf("expected floor join key EG, got %q", building.Props.Floors[0].TUMonline)
	}

	if got := s.EnrichedAt(); got != "2026-01-01T00:00:00Z" {
		t.Errorf("expected enriched_at to round trip, got %q", got)
	}
}

func TestWriteCatalogReplaces(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	if err := s.WriteCatalog(testCatalog(), "first"); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	smaller := map[string]*model.Entry{
		"only": {ID: "only", Type: model.TypeArea, Name: "Only"},
	}
	if err := s.WriteCatalog(smaller, "second"); err != nil {
		t.Fatalf("rewriting catalog: %v", err)
	}

	if n := s.EntryCount(); n != 1 {
		t.Errorf("expected rewrite to replace all entries, got %d", n)
	}
}

func TestReadEntry(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	if err := s.WriteCatalog(testCatalog(), ""); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	room, err := s.ReadEntry("0101.EG.001")
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if room.Props.Floor == nil || room.Props.Floor.Type != model.FloorGround {
		t.Errorf("expected resolved ground floor on room, got %+v", room.Props.Floor)
	}

	if _, err := s.ReadEntry("missing"); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestCounts(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer s.Close()

	if err := s.WriteCatalog(testCatalog(), ""); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	if n := s.EntryCount(); n != 3 {
		t.Errorf("expected 3 entries, got %d", n)
	}
	if n := s.BuildingsWithFloors(); n != 1 {
		t.Errorf("expected 1 entry with floors, got %d", n)
	}
	if n := s.RoomsWithFloor(); n != 1 {
		t.Errorf("expected 1 room with a floor, got %d", n)
	}

	byType := s.CountByType()
	if byType["building"] != 1 || byType["room"] != 1 || byType["campus"] != 1 {
		t.Errorf("unexpected type breakdown: %v", byType)
	}
}
