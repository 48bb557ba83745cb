package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/listctl"
)

func TestSortKeyFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    SortKeyFlag
		wantErr bool
	}{
		{
			name:  "created",
			value: "created",
			want:  SortKeyFlag(listctl.SortByCreated),
		},
		{
			name:  "name",
			value: "name",
			want:  SortKeyFlag(listctl.SortByName),
		},
		{
			name:    "invalid sort key",
			value:   "size",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag SortKeyFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid sort key")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestDictionaryTypeFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    DictionaryTypeFlag
		wantErr bool
	}{
		{
			name:  "historical",
			value: "historical",
			want:  DictionaryTypeFlag(catalog.DictionaryTypeHistorical),
		},
		{
			name:  "contemporary",
			value: "contemporary",
			want:  DictionaryTypeFlag(catalog.DictionaryTypeContemporary),
		},
		{
			name:    "invalid type",
			value:   "ancient",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag DictionaryTypeFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid dictionary type")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestNewDictionaryCommand(t *testing.T) {
	cmd := newDictionaryCommand()

	assert.Equal(t, "dictionary", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	names := make([]string, 0, 4)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "add", "edit", "delete"}, names)
}

func TestNewWordCommand(t *testing.T) {
	cmd := newWordCommand()

	assert.Equal(t, "word", cmd.Use)

	names := make([]string, 0, 5)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "add", "edit", "delete", "export"}, names)
}

func TestFindDictionary(t *testing.T) {
	items := []catalog.Dictionary{
		{ID: "d1", Name: "Devon"},
		{ID: "d2", Name: "Modern"},
	}

	got, ok := findDictionary(items, "d2")
	assert.True(t, ok)
	assert.Equal(t, "Modern", got.Name)

	_, ok = findDictionary(items, "d3")
	assert.False(t, ok)
}
