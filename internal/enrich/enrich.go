// Package enrich derives human-presentable metadata for a fully loaded
// campus catalog: calendar URLs, per-building floors, the computed
// display-property list, localized links and the overview sections.
package enrich

import (
	"github.com/CommanderStorm/navigatum-data/internal/floors"
	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// Run executes all enrichment passes over the catalog in place.
//
// Floor assignment must run before the computed props (which read the
// resolved floor); the remaining passes are independent of each other.
// Any error aborts the whole run.
func Run(data map[string]*model.Entry) error {
	if err := ExtractCalendarURLs(data); err != nil {
		return err
	}
	if err := floors.Assign(data); err != nil {
		return err
	}
	ComputeProps(data)
	LocalizeLinks(data)
	if err := GenerateBuildingsOverview(data); err != nil {
		return err
	}
	GenerateRoomsOverview(data)
	return nil
}
