package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

func TestExtractCalendarURLs(t *testing.T) {
	data := map[string]*model.Entry{
		"room": {
			ID: "room", Type: model.TypeRoom,
			TUMonlineData: &model.TUMonlineData{
				Calendar: "tvKalender.wSicht?cOrg=1&cRaumNr=42",
				RoomLink: "wbRaum.editRaum?pRaumNr=12345",
			},
		},
		"building": {
			ID: "building", Type: model.TypeBuilding,
			TUMonlineData: &model.TUMonlineData{
				AddressLink: "ris.einzelraum?raumkey=678",
			},
		},
		"plain": {ID: "plain", Type: model.TypeArea},
	}

	require.NoError(t, ExtractCalendarURLs(data))

	assert.Equal(t,
		"https://campus.tum.de/tumonline/tvKalender.wSicht?cOrg=1&cRaumNr=42",
		data["room"].Props.CalendarURL)
	assert.Equal(t, 12345, data["room"].Props.TUMonlineRoomNr)
	assert.Equal(t, 678, data["building"].Props.TUMonlineRoomNr)
	assert.Empty(t, data["plain"].Props.CalendarURL)
}

func TestExtractCalendarURLsBadRoomNumber(t *testing.T) {
	data := map[string]*model.Entry{
		"room": {
			ID: "room", Type: model.TypeRoom,
			TUMonlineData: &model.TUMonlineData{RoomLink: "wbRaum.editRaum?pRaumNr=not-a-number"},
		},
	}

	err := ExtractCalendarURLs(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room")
}

func TestLocalizeLinks(t *testing.T) {
	data := map[string]*model.Entry{
		"b1": {
			ID: "b1", Type: model.TypeBuilding,
			Props: model.Props{Links: []model.Link{
				{Text: localize.Plain("Floor plans"), URL: localize.Plain("https://example.com/plans")},
				{Text: localize.Pair("Lageplan", "Site map"), URL: localize.Plain("https://example.com/map")},
			}},
		},
	}

	LocalizeLinks(data)

	links := data["b1"].Props.Links
	assert.False(t, links[0].Text.IsPlain())
	assert.Equal(t, "Floor plans", links[0].Text.DE)
	assert.Equal(t, "Floor plans", links[0].Text.EN)
	assert.False(t, links[0].URL.IsPlain())

	assert.Equal(t, "Lageplan", links[1].Text.DE)
	assert.Equal(t, "Site map", links[1].Text.EN)
}

func TestRunOrdersFloorsBeforeComputed(t *testing.T) {
	building := &model.Entry{
		ID: "b1", Type: model.TypeBuilding, Name: "Building",
		ChildrenFlat: []string{"r1"},
		Props:        model.Props{IDs: &model.IDProps{BID: "b1"}},
	}
	data := map[string]*model.Entry{
		"b1": building,
		"r1": {
			ID: "r1", Type: model.TypeRoom, Name: "Room",
			Props: model.Props{IDs: &model.IDProps{Roomcode: "b1.EG.001"}},
		},
	}

	require.NoError(t, Run(data))

	// The room's computed list contains the floor row, which only
	// exists if floor assignment ran before the computed pass.
	texts := computedTexts(data["r1"].Props.Computed)
	assert.Equal(t, "0 (Ground floor)", texts["Floor"])
	require.Len(t, building.Props.Floors, 1)
	assert.NotNil(t, building.Sections.RoomsOverview)
}
