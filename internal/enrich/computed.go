package enrich

import (
	"fmt"
	"strings"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// ComputeProps builds the ordered "computed" display list of every entry
// that has displayable properties. The checks run in a fixed order so
// the list layout is stable across entries; absent groups are skipped.
func ComputeProps(data map[string]*model.Entry) {
	for id, entry := range data {
		if !entry.Props.HasAny() {
			continue
		}
		entry.Props.Computed = computedProps(id, entry)
	}
}

func computedProps(id string, entry *model.Entry) []model.ComputedProp {
	var computed []model.ComputedProp

	if ids := entry.Props.IDs; ids != nil {
		if ids.BID != "" {
			computed = append(computed, model.ComputedProp{
				Name: localize.Mark("Building id"),
				Text: ids.BID,
			})
		}
		if ids.Roomcode != "" {
			computed = append(computed, model.ComputedProp{
				Name: localize.Mark("Room code"),
				Text: ids.Roomcode,
			})
		}
		if ids.ArchName != "" {
			// The part after "@" repeats the building and is dropped.
			computed = append(computed, model.ComputedProp{
				Name: localize.Mark("Architect's name"),
				Text: strings.SplitN(ids.ArchName, "@", 2)[0],
			})
		}
	}

	if floor := entry.Props.Floor; floor != nil {
		computed = append(computed, model.ComputedProp{
			Name: localize.Mark("Floor"),
			Text: fmt.Sprintf("%s (%s)", floor.Floor, floor.Name),
		})
	}

	if aliases := buildingAliases(entry, id); aliases != "" {
		computed = append(computed, model.ComputedProp{
			Name: localize.Mark("Building ids"),
			Text: aliases,
		})
	}

	if address := entry.Props.Address; address != nil {
		computed = append(computed, model.ComputedProp{
			Name: localize.Mark("Address"),
			Text: fmt.Sprintf("%s, %s", address.Street, address.PLZPlace),
		})
	}

	if stats := entry.Props.Stats; stats != nil {
		if stats.NBuildings != nil {
			computed = append(computed, model.ComputedProp{
				Name: localize.Mark("Number of buildings"),
				Text: fmt.Sprint(*stats.NBuildings),
			})
		}
		if stats.NSeats != nil {
			computed = append(computed, model.ComputedProp{
				Name: localize.Mark("Seats"),
				Text: fmt.Sprint(*stats.NSeats),
			})
		}
		if stats.NRooms != nil {
			computed = append(computed, roomCountProp(stats))
		}
	}

	for _, generic := range entry.Props.Generic {
		computed = append(computed, model.ComputedProp{
			Name: localize.Mark(generic.Name),
			Text: generic.Text,
			URL:  generic.URL,
		})
	}

	return computed
}

// buildingAliases renders the b_prefix alias list, skipping the trivial
// case where the only alias is the entry's own id. Aliases are padded to
// the four-character building-id format.
func buildingAliases(entry *model.Entry, id string) string {
	if len(entry.BPrefix) == 0 {
		return ""
	}
	if len(entry.BPrefix) == 1 && entry.BPrefix[0] == id {
		return ""
	}
	padded := make([]string, len(entry.BPrefix))
	for i, prefix := range entry.BPrefix {
		for len(prefix) < 4 {
			prefix += "x"
		}
		padded[i] = prefix
	}
	return strings.Join(padded, ", ")
}

// roomCountProp disambiguates the room count when the total differs from
// the count excluding corridors and similar rooms.
func roomCountProp(stats *model.Stats) model.ComputedProp {
	name := localize.Mark("Number of rooms")
	if stats.NRoomsReg == nil || *stats.NRooms == *stats.NRoomsReg {
		return model.ComputedProp{Name: name, Text: fmt.Sprint(*stats.NRooms)}
	}
	text := localize.Markf("%d (%d excluding corridors etc.)", *stats.NRooms, *stats.NRoomsReg)
	return model.ComputedProp{Name: name, Text: text.String()}
}
