package model

import (
	"encoding/json"

	"github.com/CommanderStorm/navigatum-data/internal/localize"
)

// EntryType classifies a node in the campus hierarchy.
type EntryType string

const (
	TypeRoot           EntryType = "root"
	TypeCampus         EntryType = "campus"
	TypeSite           EntryType = "site"
	TypeArea           EntryType = "area"
	TypeBuilding       EntryType = "building"
	TypeJoinedBuilding EntryType = "joined_building"
	TypeVirtualRoom    EntryType = "virtual_room"
	TypeRoom           EntryType = "room"
)

// Entry is one node of the campus hierarchy.
type Entry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name,omitempty"`

	// Parents lists ancestor ids, nearest last. Children holds direct
	// child ids, ChildrenFlat all descendant ids in traversal order.
	Parents      []string `json:"parents,omitempty"`
	Children     []string `json:"children,omitempty"`
	ChildrenFlat []string `json:"children_flat,omitempty"`

	BPrefix       BPrefix        `json:"b_prefix,omitempty"`
	Usage         *Usage         `json:"usage,omitempty"`
	Imgs          []Image        `json:"imgs,omitempty"`
	TUMonlineData *TUMonlineData `json:"tumonline_data,omitempty"`

	Props      Props      `json:"props,omitempty"`
	Generators Generators `json:"generators,omitempty"`
	Sections   Sections   `json:"sections,omitempty"`
}

// BPrefix is the building-id alias list of an entry. The source data
// stores a single alias as a bare string, multiple as an array.
type BPrefix []string

func (p *BPrefix) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*p = BPrefix{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*p = many
	return nil
}

// Usage classifies what a room is used for.
type Usage struct {
	Name string `json:"name"`
	DIN  int    `json:"din_277,omitempty"`
}

// Image references a thumbnail/photo of an entry.
type Image struct {
	Name string `json:"name"`
}

// TUMonlineData carries raw links from the TUMonline source system.
type TUMonlineData struct {
	Calendar    string `json:"calendar,omitempty"`
	RoomLink    string `json:"room_link,omitempty"`
	AddressLink string `json:"address_link,omitempty"`
}

// Props is the bag of raw and derived property groups of an entry.
// Each group is an optional typed sub-structure; a nil group means the
// source data does not provide it.
type Props struct {
	IDs             *IDProps       `json:"ids,omitempty"`
	Floor           *FloorDetail   `json:"floor,omitempty"`
	Floors          []FloorDetail  `json:"floors,omitempty"`
	Address         *Address       `json:"address,omitempty"`
	Stats           *Stats         `json:"stats,omitempty"`
	Generic         []GenericProp  `json:"generic,omitempty"`
	Links           []Link         `json:"links,omitempty"`
	Computed        []ComputedProp `json:"computed,omitempty"`
	CalendarURL     string         `json:"calendar_url,omitempty"`
	TUMonlineRoomNr int            `json:"tumonline_room_nr,omitempty"`
}

// HasAny reports whether any displayable property group is present.
func (p *Props) HasAny() bool {
	return p.IDs != nil || p.Floor != nil || p.Address != nil ||
		p.Stats != nil || len(p.Generic) > 0
}

// IDProps holds the source-system identifiers of an entry.
type IDProps struct {
	BID      string `json:"b_id,omitempty"`
	Roomcode string `json:"roomcode,omitempty"`
	ArchName string `json:"arch_name,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street   string `json:"street"`
	PLZPlace string `json:"plz_place"`
}

// Stats holds aggregate counts over an entry's descendants.
type Stats struct {
	NBuildings *int `json:"n_buildings,omitempty"`
	NSeats     *int `json:"n_seats,omitempty"`
	NRooms     *int `json:"n_rooms,omitempty"`
	NRoomsReg  *int `json:"n_rooms_reg,omitempty"`
}

// GenericProp is an open-ended extra display property from the source
// data: a name plus either plain text or a structured value with a URL.
type GenericProp struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Link is an external link attached to an entry.
type Link struct {
	Text localize.Value `json:"text"`
	URL  localize.Value `json:"url"`
}

// ComputedProp is one row of the derived display-property list.
type ComputedProp struct {
	Name localize.String `json:"name"`
	Text string          `json:"text"`
	URL  string          `json:"url,omitempty"`
}

// FloorType is the machine-readable classification of a floor.
type FloorType string

const (
	FloorGround    FloorType = "ground"
	FloorRoof      FloorType = "roof"
	FloorTP        FloorType = "tp"
	FloorBasement  FloorType = "basement"
	FloorMezzanine FloorType = "mezzanine"
	FloorUpper     FloorType = "upper"
)

// FloorDetail is the derived record for one floor of a building.
// TUMonline keeps the original source label and is the join key back to
// the rooms on that floor.
type FloorDetail struct {
	ID             int             `json:"id"`
	Floor          string          `json:"floor"`
	TUMonline      string          `json:"tumonline"`
	Type           FloorType       `json:"type"`
	Name           localize.String `json:"name"`
	MezzanineShift int             `json:"mezzanine_shift"`
}

// Generators is the per-entry configuration for the derivation passes.
type Generators struct {
	Floors            *FloorsConfig            `json:"floors,omitempty"`
	BuildingsOverview *BuildingsOverviewConfig `json:"buildings_overview,omitempty"`
}

// FloorsConfig configures floor derivation. FloorPatch (on rooms)
// overrides the raw label collected from the roomcode. FloorPatches (on
// buildings) overrides how individual labels are resolved.
type FloorsConfig struct {
	FloorPatch   string                `json:"floor_patch,omitempty"`
	FloorPatches map[string]FloorPatch `json:"floor_patches,omitempty"`
}

// FloorPatch overrides parts of the derivation for one floor label.
type FloorPatch struct {
	UseAs string `json:"use_as,omitempty"`
	ID    *int   `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
}

// BuildingsOverviewConfig configures the buildings_overview section.
type BuildingsOverviewConfig struct {
	NVisible  int      `json:"n_visible"`
	ListStart []string `json:"list_start,omitempty"`
}

// Sections holds the derived summary sections of composite entries.
type Sections struct {
	BuildingsOverview *BuildingsOverviewSection `json:"buildings_overview,omitempty"`
	RoomsOverview     *RoomsOverviewSection     `json:"rooms_overview,omitempty"`
}

// BuildingsOverviewSection lists the notable children of a composite
// entry, biggest first.
type BuildingsOverviewSection struct {
	NVisible int             `json:"n_visible"`
	Entries  []OverviewEntry `json:"entries"`
}

// OverviewEntry is one child in a buildings overview.
type OverviewEntry struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Subtext localize.String `json:"subtext"`
	Thumb   string          `json:"thumb,omitempty"`
}

// RoomsOverviewSection groups the descendant rooms of an entry by usage.
type RoomsOverviewSection struct {
	Usages []UsageGroup `json:"usages"`
}

// UsageGroup is one usage bucket of a rooms overview.
type UsageGroup struct {
	Name     string    `json:"name"`
	Count    int       `json:"count"`
	Children []RoomRef `json:"children"`
}

// RoomRef references a room by id and display name.
type RoomRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
