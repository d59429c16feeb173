package enrich

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CommanderStorm/navigatum-data/internal/model"
)

const tumonlineBaseURL = "https://campus.tum.de/tumonline/"

// ExtractCalendarURLs rewrites the raw TUMonline links of every entry
// into a usable calendar URL and the numeric TUMonline room number.
func ExtractCalendarURLs(data map[string]*model.Entry) error {
	for id, entry := range data {
		raw := entry.TUMonlineData
		if raw == nil {
			continue
		}

		if raw.Calendar != "" {
			entry.Props.CalendarURL = tumonlineBaseURL + raw.Calendar
		}

		switch {
		case raw.RoomLink != "":
			nr, err := roomNumber(raw.RoomLink, "wbRaum.editRaum?pRaumNr=")
			if err != nil {
				return fmt.Errorf("entry %q: %w", id, err)
			}
			entry.Props.TUMonlineRoomNr = nr
		case raw.AddressLink != "":
			nr, err := roomNumber(raw.AddressLink, "ris.einzelraum?raumkey=")
			if err != nil {
				return fmt.Errorf("entry %q: %w", id, err)
			}
			entry.Props.TUMonlineRoomNr = nr
		}
	}
	return nil
}

func roomNumber(link, prefix string) (int, error) {
	nr, err := strconv.Atoi(strings.TrimPrefix(link, prefix))
	if err != nil {
		return 0, fmt.Errorf("parsing TUMonline room number from %q: %w", link, err)
	}
	return nr, nil
}
