package floors

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind is the parsed family of a TUMonline floor label.
type Kind int

const (
	Ground Kind = iota
	Roof
	SemiBasement
	Basement
	Mezzanine
	Upper
)

// Label is a TUMonline floor label parsed into its family and level.
// Parsing happens once; both physical ordering and naming dispatch on
// the parsed form instead of re-inspecting the raw string.
type Label struct {
	Kind  Kind
	Level int // basement/mezzanine/upper level, 0 for the others
}

// UnknownFloorLabelError reports a floor label that matches none of the
// recognized TUMonline patterns.
type UnknownFloorLabelError struct {
	Building string
	Label    string
}

func (e *UnknownFloorLabelError) Error() string {
	if e.Building == "" {
		return fmt.Sprintf("unknown TUMonline floor label %q", e.Label)
	}
	return fmt.Sprintf("unknown TUMonline floor label %q in building %q", e.Label, e.Building)
}

// ParseLabel parses a raw TUMonline floor label. Recognized forms:
// "EG" (ground), "DG" (roof), "TP" (semi-basement), "U<n>" (basement),
// "Z<n>" (mezzanine) and a bare number "<n>" (upper floor).
func ParseLabel(raw string) (Label, error) {
	switch raw {
	case "EG":
		return Label{Kind: Ground}, nil
	case "DG":
		return Label{Kind: Roof}, nil
	case "TP":
		return Label{Kind: SemiBasement}, nil
	}
	if n, ok := parseLevel(raw); ok {
		return Label{Kind: Upper, Level: n}, nil
	}
	if rest, found := strings.CutPrefix(raw, "U"); found {
		if n, ok := parseLevel(rest); ok {
			return Label{Kind: Basement, Level: n}, nil
		}
	}
	if rest, found := strings.CutPrefix(raw, "Z"); found {
		if n, ok := parseLevel(rest); ok {
			return Label{Kind: Mezzanine, Level: n}, nil
		}
	}
	return Label{}, &UnknownFloorLabelError{Label: raw}
}

func parseLevel(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortKey returns the virtual height of the label. Keys are strictly
// monotonic with physical height: basements sort below TP, TP below
// ground, each mezzanine Z<n> directly below upper floor <n>, and the
// roof level above everything.
func (l Label) SortKey() int {
	switch l.Kind {
	case Ground:
		return 0
	case Roof:
		return 1000
	case SemiBasement:
		return -5
	case Basement:
		return -10 * l.Level
	case Mezzanine:
		return 10*l.Level - 5
	default:
		return 10 * l.Level
	}
}

// SortLabels deduplicates the raw labels of one building and returns
// them in physical order, lowest floor first.
func SortLabels(labels []string) ([]string, error) {
	type parsed struct {
		raw string
		key int
	}

	seen := make(map[string]bool, len(labels))
	distinct := make([]parsed, 0, len(labels))
	for _, raw := range labels {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		label, err := ParseLabel(raw)
		if err != nil {
			return nil, err
		}
		distinct = append(distinct, parsed{raw: raw, key: label.SortKey()})
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].key < distinct[j].key
	})

	ordered := make([]string, len(distinct))
	for i, p := range distinct {
		ordered[i] = p.raw
	}
	return ordered, nil
}
