package localize

import (
	"encoding/json"
	"fmt"
)

// String is text marked for translation outside the pipeline. It carries
// the original source text together with its formatting arguments so the
// translation layer can substitute them into a translated format string.
type String struct {
	Format string
	Args   []any
}

// Mark wraps plain text for later translation.
func Mark(text string) String {
	return String{Format: text}
}

// Markf wraps a format string and its arguments for later translation.
// The arguments are kept unformatted until rendering.
func Markf(format string, args ...any) String {
	return String{Format: format, Args: args}
}

// String renders the source-language text.
func (s String) String() string {
	if len(s.Args) == 0 {
		return s.Format
	}
	return fmt.Sprintf(s.Format, s.Args...)
}

func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts already-rendered text. The formatting arguments
// are not recoverable from serialized form.
func (s *String) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return err
	}
	*s = String{Format: text}
	return nil
}

// Value is a user-facing value (link text, URL) that is either still a
// plain string from the source data or an explicit {de, en} pair.
type Value struct {
	DE    string
	EN    string
	plain bool
}

// Plain returns a not-yet-localized value.
func Plain(text string) Value {
	return Value{DE: text, EN: text, plain: true}
}

// Pair returns an explicitly localized value.
func Pair(de, en string) Value {
	return Value{DE: de, EN: en}
}

// IsPlain reports whether the value has not been localized yet.
func (v Value) IsPlain() bool {
	return v.plain
}

// Localized converts a plain value into an explicit pair carrying the
// same text in both languages. Already-localized values are unchanged.
func (v Value) Localized() Value {
	return Value{DE: v.DE, EN: v.EN}
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.plain {
		return json.Marshal(v.DE)
	}
	return json.Marshal(struct {
		DE string `json:"de"`
		EN string `json:"en"`
	}{v.DE, v.EN})
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		*v = Plain(text)
		return nil
	}
	var pair struct {
		DE string `json:"de"`
		EN string `json:"en"`
	}
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	*v = Pair(pair.DE, pair.EN)
	return nil
}
