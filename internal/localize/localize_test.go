package localize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkf(t *testing.T) {
	s := Markf("%d. upper floor + %d mezzanines", 3, 2)
	assert.Equal(t, "3. upper floor + 2 mezzanines", s.String())
	assert.Equal(t, "%d. upper floor + %d mezzanines", s.Format, "source format is preserved for translation")
}

func TestStringJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Markf("%d rooms", 7))
	require.NoError(t, err)
	assert.Equal(t, `"7 rooms"`, string(raw))

	var s String
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, "7 rooms", s.String())
}

func TestValuePlain(t *testing.T) {
	v := Plain("Floor plans")
	assert.True(t, v.IsPlain())

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"Floor plans"`, string(raw))

	localized := v.Localized()
	assert.False(t, localized.IsPlain())
	raw, err = json.Marshal(localized)
	require.NoError(t, err)
	assert.JSONEq(t, `{"de":"Floor plans","en":"Floor plans"}`, string(raw))
}

func TestValueUnmarshal(t *testing.T) {
	var plain Value
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &plain))
	assert.True(t, plain.IsPlain())
	assert.Equal(t, "hello", plain.DE)

	var pair Value
	require.NoError(t, json.Unmarshal([]byte(`{"de":"Hallo","en":"Hello"}`), &pair))
	assert.False(t, pair.IsPlain())
	assert.Equal(t, "Hallo", pair.DE)
	assert.Equal(t, "Hello", pair.EN)
}
