package floors

import (
	"fmt"
	"strconv"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// Resolve turns a physically ordered label list into one FloorDetail per
// label, applying the building's floor patches.
//
// Floor ids are anchored at the ground floor: "EG" gets id 0, floors
// above count up, floors below count down. If no "EG" is present the
// lowest floor becomes the anchor. Mezzanines above the anchor shift the
// display names of the upper floors that follow them.
func Resolve(ordered []string, patches map[string]model.FloorPatch) ([]model.FloorDetail, error) {
	egIndex := 0
	for i, raw := range ordered {
		if raw == "EG" {
			egIndex = i
			break
		}
	}

	details := make([]model.FloorDetail, 0, len(ordered))
	mezzanineShift := 0
	for i, raw := range ordered {
		patch := patches[raw]

		effective := raw
		if patch.UseAs != "" {
			effective = patch.UseAs
		}
		id := i - egIndex
		if patch.ID != nil {
			id = *patch.ID
		}

		label, err := ParseLabel(effective)
		if err != nil {
			return nil, err
		}

		floorType, abbr, name := describe(id, label, mezzanineShift)
		if patch.Name != "" {
			name = localize.Mark(patch.Name)
		}

		details = append(details, model.FloorDetail{
			ID:             id,
			Floor:          abbr,
			TUMonline:      raw,
			Type:           floorType,
			Name:           name,
			MezzanineShift: mezzanineShift,
		})

		if i-egIndex >= 0 && label.Kind == Mezzanine {
			mezzanineShift++
		}
	}

	return details, nil
}

// describe derives the floor type, short abbreviation and human name
// from the parsed label. mezzanineShift counts the mezzanines between
// the ground anchor and this floor and only affects upper-floor names.
func describe(id int, label Label, mezzanineShift int) (model.FloorType, string, localize.String) {
	switch label.Kind {
	case Ground:
		return model.FloorGround, "0", localize.Mark("Ground floor")
	case Roof:
		return model.FloorRoof, strconv.Itoa(id), localize.Mark("Roof level")
	case SemiBasement:
		return model.FloorTP, "TP", localize.Mark("Semi-basement")
	case Basement:
		return model.FloorBasement, fmt.Sprintf("-%d", label.Level),
			localize.Markf("%d. basement level", label.Level)
	case Mezzanine:
		abbr := fmt.Sprintf("Z%d", label.Level)
		if id == 1 {
			return model.FloorMezzanine, abbr, localize.Mark("1st mezzanine, above ground")
		}
		return model.FloorMezzanine, abbr, localize.Markf("%d. mezzanine", label.Level)
	default:
		abbr := strconv.Itoa(label.Level)
		switch mezzanineShift {
		case 0:
			return model.FloorUpper, abbr, localize.Markf("%d. upper floor", label.Level)
		case 1:
			return model.FloorUpper, abbr, localize.Markf("%d. upper floor + 1 mezzanine", label.Level)
		default:
			return model.FloorUpper, abbr,
				localize.Markf("%d. upper floor + %d mezzanines", label.Level, mezzanineShift)
		}
	}
}
