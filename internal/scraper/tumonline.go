// Package scraper retrieves raw area and building data from the
// TUMonline room search, to be merged into the catalog sources.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const roomSearchURL = "https://campus.tum.de/tumonline/wbSuche.cbRaumForm"

// Area is one TUMonline building area.
type Area struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Building is one TUMonline building with its assigned area.
type Building struct {
	FilterID int    `json:"filter_id"`
	Name     string `json:"name"`
	AreaID   int    `json:"area_id"`
}

// FilterOption is one option of a room search filter dropdown.
type FilterOption struct {
	Value string
	Label string
}

// ScrapeAreas retrieves the building areas offered by the room search form.
func ScrapeAreas(ctx context.Context, rl *RateLimiter) ([]Area, error) {
	doc, err := fetchRoomSearch(ctx, rl, 0)
	if err != nil {
		return nil, err
	}

	var areas []Area
	for _, opt := range ParseFilterOptions(doc, "pGebaeudebereich") {
		id, err := strconv.Atoi(opt.Value)
		if err != nil || id == 0 {
			continue // "all areas" placeholder or malformed option
		}
		areas = append(areas, Area{ID: id, Name: opt.Label})
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("no areas found in room search form")
	}
	return areas, nil
}

// ScrapeBuildings retrieves all buildings with their assigned TUMonline
// area by refetching the room search form once per area.
func ScrapeBuildings(ctx context.Context, rl *RateLimiter) ([]Building, error) {
	areas, err := ScrapeAreas(ctx, rl)
	if err != nil {
		return nil, fmt.Errorf("scraping areas: %w", err)
	}

	var buildings []Building
	for _, area := range areas {
		doc, err := fetchRoomSearch(ctx, rl, area.ID)
		if err != nil {
			return nil, fmt.Errorf("scraping buildings of area %d: %w", area.ID, err)
		}
		for _, opt := range ParseFilterOptions(doc, "pGebaeude") {
			filterID, err := strconv.Atoi(opt.Value)
			if err != nil || filterID == 0 {
				continue
			}
			buildings = append(buildings, Building{
				FilterID: filterID,
				Name:     opt.Label,
				AreaID:   area.ID,
			})
		}
	}

	sort.Slice(buildings, func(i, j int) bool {
		a, b := buildings[i], buildings[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.AreaID != b.AreaID {
			return a.AreaID < b.AreaID
		}
		return a.FilterID < b.FilterID
	})
	return buildings, nil
}

// ParseFilterOptions extracts the non-empty options of one filter
// dropdown from a room search form document.
func ParseFilterOptions(doc *goquery.Document, field string) []FilterOption {
	var options []FilterOption
	doc.Find(fmt.Sprintf("select[name=%s] option", field)).Each(func(_ int, opt *goquery.Selection) {
		value, _ := opt.Attr("value")
		label := strings.TrimSpace(opt.Text())
		if value != "" && label != "" {
			options = append(options, FilterOption{Value: value, Label: label})
		}
	})
	return options
}

func fetchRoomSearch(ctx context.Context, rl *RateLimiter, areaID int) (*goquery.Document, error) {
	if rl != nil {
		if err := rl.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	url := fmt.Sprintf("%s?pGebaeudebereich=%d", roomSearchURL, areaID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching room search form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("room search form returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing room search HTML: %w", err)
	}
	return doc, nil
}
