package floors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// UnresolvedFloorJoinError reports a room whose raw floor label has no
// matching resolved floor. Collection and resolution work off the same
// label set, so this is an internal-consistency failure, not bad input.
type UnresolvedFloorJoinError struct {
	Room  string
	Label string
}

func (e *UnresolvedFloorJoinError) Error() string {
	return fmt.Sprintf("room %q has floor label %q with no resolved floor", e.Room, e.Label)
}

// roomFact links a room to the raw TUMonline floor label it sits on.
type roomFact struct {
	id    string
	label string
}

// Assign derives floor details for every floor-owning entry and attaches
// them: the full list onto the owner's props.floors and the matching
// floor onto each contained room's props.floor.
//
// Structural entries (root, area, site, campus, virtual_room) never own
// floors, and buildings directly under a joined_building are handled at
// the joined_building level. All writes for one owner happen only after
// its floors resolved without error.
func Assign(data map[string]*model.Entry) error {
	for id, entry := range data {
		switch entry.Type {
		case model.TypeRoot, model.TypeArea, model.TypeSite, model.TypeCampus, model.TypeVirtualRoom:
			continue
		}
		if len(entry.Parents) > 0 {
			parent := data[entry.Parents[len(entry.Parents)-1]]
			if parent != nil && parent.Type == model.TypeJoinedBuilding {
				continue
			}
		}
		if len(entry.ChildrenFlat) == 0 {
			continue
		}

		if err := assignOwner(data, id, entry); err != nil {
			return err
		}
	}
	return nil
}

func assignOwner(data map[string]*model.Entry, id string, entry *model.Entry) error {
	facts := collectRoomFacts(data, entry)

	labels := make([]string, len(facts))
	for i, fact := range facts {
		labels[i] = fact.label
	}

	ordered, err := SortLabels(labels)
	if err != nil {
		return inBuilding(err, id)
	}

	var patches map[string]model.FloorPatch
	if entry.Generators.Floors != nil {
		patches = entry.Generators.Floors.FloorPatches
	}
	details, err := Resolve(ordered, patches)
	if err != nil {
		return inBuilding(err, id)
	}

	lookup := make(map[string]model.FloorDetail, len(details))
	for _, detail := range details {
		lookup[detail.TUMonline] = detail
	}

	// Resolve every join before writing anything, so a failure leaves
	// neither the owner nor any of its rooms partially enriched.
	assigned := make([]model.FloorDetail, len(facts))
	for i, fact := range facts {
		detail, ok := lookup[fact.label]
		if !ok {
			return &UnresolvedFloorJoinError{Room: fact.id, Label: fact.label}
		}
		assigned[i] = detail
	}

	entry.Props.Floors = details
	for i, fact := range facts {
		detail := assigned[i]
		data[fact.id].Props.Floor = &detail
	}
	return nil
}

// collectRoomFacts gathers the raw floor label of every room below the
// owner. TUMonline (via the roomcode) is the source of the label unless
// the room carries a floor_patch.
func collectRoomFacts(data map[string]*model.Entry, entry *model.Entry) []roomFact {
	var facts []roomFact
	for _, childID := range entry.ChildrenFlat {
		child := data[childID]
		if child == nil || child.Type != model.TypeRoom || child.Props.IDs == nil {
			continue
		}

		label := ""
		if child.Generators.Floors != nil && child.Generators.Floors.FloorPatch != "" {
			label = child.Generators.Floors.FloorPatch
		} else if parts := strings.Split(child.Props.IDs.Roomcode, "."); len(parts) > 1 {
			label = parts[1]
		} else {
			// Malformed roomcode: keep it as the label so the failure
			// names what the source data actually contains.
			label = child.Props.IDs.Roomcode
		}

		facts = append(facts, roomFact{id: childID, label: label})
	}
	return facts
}

// inBuilding attaches the owning building id to an unknown-label error.
func inBuilding(err error, building string) error {
	var unknown *UnknownFloorLabelError
	if errors.As(err, &unknown) && unknown.Building == "" {
		unknown.Building = building
	}
	return err
}
