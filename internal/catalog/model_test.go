package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Ref
	}{
		{
			name: "bare id string",
			data: `"abc123"`,
			want: Ref{ID: "abc123"},
		},
		{
			name: "embedded object with mongo id",
			data: `{"_id": "abc123", "name": "Olma"}`,
			want: Ref{ID: "abc123", Name: "Olma"},
		},
		{
			name: "embedded object with plain id",
			data: `{"id": "abc123", "name": "Olma"}`,
			want: Ref{ID: "abc123", Name: "Olma"},
		},
		{
			name: "mongo id wins over plain id",
			data: `{"_id": "mongo", "id": "plain"}`,
			want: Ref{ID: "mongo"},
		},
		{
			name: "null",
			data: `null`,
			want: Ref{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Ref
			require.NoError(t, json.Unmarshal([]byte(tc.data), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRef_MarshalJSON(t *testing.T) {
	// Write payloads carry the bare id even when a name was decoded.
	data, err := json.Marshal(Ref{ID: "abc123", Name: "Olma"})
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, string(data))
}

func TestDictionary_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		wantID string
	}{
		{
			name:   "mongo id",
			data:   `{"_id": "d1", "name": "Devon", "type": "historical"}`,
			wantID: "d1",
		},
		{
			name:   "plain id fallback",
			data:   `{"id": "d1", "name": "Devon", "type": "historical"}`,
			wantID: "d1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Dictionary
			require.NoError(t, json.Unmarshal([]byte(tc.data), &got))
			assert.Equal(t, tc.wantID, got.ID)
			assert.Equal(t, "Devon", got.Name)
			assert.Equal(t, DictionaryTypeHistorical, got.Type)
		})
	}
}

func TestWord_UnmarshalJSON(t *testing.T) {
	data := `{
		"_id": "w1",
		"name": "olma",
		"meaning": "apple",
		"dictionary": "d1",
		"department": {"_id": "dep1", "name": "Fruits"},
		"category": {"id": "c1"}
	}`

	var got Word
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, Ref{ID: "d1"}, got.Dictionary)
	assert.Equal(t, Ref{ID: "dep1", Name: "Fruits"}, got.Department)
	assert.Equal(t, Ref{ID: "c1"}, got.Category)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase ascii", input: "olma", want: "Olma"},
		{name: "already capitalized", input: "Olma", want: "Olma"},
		{name: "non-ascii first rune", input: "o'zbek", want: "O'zbek"},
		{name: "cyrillic", input: "олма", want: "Олма"},
		{name: "empty", input: "", want: ""},
		{name: "single rune", input: "o", want: "O"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Capitalize(tc.input))
		})
	}
}
