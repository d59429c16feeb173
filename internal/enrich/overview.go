package enrich

import (
	"fmt"
	"sort"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// defaultNVisible is how many overview entries are shown before the
// "show more" fold when an entry carries no explicit configuration.
const defaultNVisible = 6

// UnknownOverviewChildError reports a configured list_start id that does
// not exist in the catalog.
type UnknownOverviewChildError struct {
	Owner string
	Child string
}

func (e *UnknownOverviewChildError) Error() string {
	return fmt.Sprintf("unknown id %q when generating buildings_overview for %q", e.Child, e.Owner)
}

// UnknownOverviewTypeError reports an entry type no subtext rule exists for.
type UnknownOverviewTypeError struct {
	Owner string
	Child string
	Type  model.EntryType
}

func (e *UnknownOverviewTypeError) Error() string {
	return fmt.Sprintf("cannot generate buildings_overview subtext for type %q (owner %q, child %q)",
		e.Type, e.Owner, e.Child)
}

// GenerateBuildingsOverview builds the buildings_overview section of
// every composite entry: its notable direct children, biggest first,
// optionally reordered by a configured list_start prefix.
func GenerateBuildingsOverview(data map[string]*model.Entry) error {
	for id, entry := range data {
		switch entry.Type {
		case model.TypeArea, model.TypeSite, model.TypeCampus:
		default:
			continue
		}
		if len(entry.ChildrenFlat) == 0 {
			continue
		}

		nVisible := defaultNVisible
		var listStart []string
		if cfg := entry.Generators.BuildingsOverview; cfg != nil {
			nVisible = cfg.NVisible
			listStart = cfg.ListStart
		}

		var buildings []*model.Entry
		for _, childID := range entry.Children {
			child := data[childID]
			if child == nil {
				continue
			}
			switch child.Type {
			case model.TypeArea, model.TypeSite, model.TypeCampus,
				model.TypeBuilding, model.TypeJoinedBuilding:
				buildings = append(buildings, child)
			}
		}

		// Biggest first; ties break alphabetically descending so the
		// order stays predictable.
		sort.SliceStable(buildings, func(i, j int) bool {
			ci, cj := len(buildings[i].ChildrenFlat), len(buildings[j].ChildrenFlat)
			if ci != cj {
				return ci > cj
			}
			return buildings[i].Name > buildings[j].Name
		})

		// list_start overrides how the list begins and may introduce
		// entries that are not direct children; everything else keeps
		// its sorted position after them.
		inStart := make(map[string]bool, len(listStart))
		for _, startID := range listStart {
			inStart[startID] = true
		}
		merged := append([]string{}, listStart...)
		for _, building := range buildings {
			if !inStart[building.ID] {
				merged = append(merged, building.ID)
			}
		}

		entries := make([]model.OverviewEntry, 0, len(merged))
		for _, childID := range merged {
			child, ok := data[childID]
			if !ok {
				return &UnknownOverviewChildError{Owner: id, Child: childID}
			}

			subtext, err := overviewSubtext(id, child)
			if err != nil {
				return err
			}

			name := child.Name
			if child.ShortName != "" {
				name = child.ShortName
			}
			thumb := ""
			if len(child.Imgs) > 0 {
				thumb = child.Imgs[0].Name
			}
			entries = append(entries, model.OverviewEntry{
				ID:      childID,
				Name:    name,
				Subtext: subtext,
				Thumb:   thumb,
			})
		}

		entry.Sections.BuildingsOverview = &model.BuildingsOverviewSection{
			NVisible: nVisible,
			Entries:  entries,
		}
	}
	return nil
}

func overviewSubtext(owner string, child *model.Entry) (localize.String, error) {
	nRooms, nBuildings := 0, 0
	if stats := child.Props.Stats; stats != nil {
		if stats.NRooms != nil {
			nRooms = *stats.NRooms
		}
		if stats.NBuildings != nil {
			nBuildings = *stats.NBuildings
		}
	}

	switch child.Type {
	case model.TypeBuilding, model.TypeJoinedBuilding:
		if nRooms == 0 {
			return localize.Mark("No rooms known"), nil
		}
		return localize.Markf("%d rooms", nRooms), nil
	case model.TypeArea:
		return localize.Markf("%d buildings, %d rooms", nBuildings, nRooms), nil
	case model.TypeSite:
		return localize.Markf("%d buildings, %d rooms (off-site)", nBuildings, nRooms), nil
	default:
		return localize.String{}, &UnknownOverviewTypeError{Owner: owner, Child: child.ID, Type: child.Type}
	}
}

// GenerateRoomsOverview builds the rooms_overview section of every
// building-like or area-like entry: its descendant rooms grouped by
// usage, groups and rooms sorted alphabetically.
func GenerateRoomsOverview(data map[string]*model.Entry) {
	for _, entry := range data {
		switch entry.Type {
		case model.TypeArea, model.TypeSite, model.TypeCampus,
			model.TypeBuilding, model.TypeJoinedBuilding, model.TypeVirtualRoom:
		default:
			continue
		}
		if len(entry.ChildrenFlat) == 0 {
			continue
		}

		groups := make(map[string][]model.RoomRef)
		for _, childID := range entry.ChildrenFlat {
			child := data[childID]
			if child == nil || child.Type != model.TypeRoom {
				continue
			}
			usage := "Unknown"
			if child.Usage != nil {
				usage = child.Usage.Name
			}
			groups[usage] = append(groups[usage], model.RoomRef{ID: childID, Name: child.Name})
		}

		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)

		usages := make([]model.UsageGroup, 0, len(names))
		for _, name := range names {
			rooms := groups[name]
			sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
			usages = append(usages, model.UsageGroup{
				Name:     name,
				Count:    len(rooms),
				Children: rooms,
			})
		}

		entry.Sections.RoomsOverview = &model.RoomsOverviewSection{Usages: usages}
	}
}
