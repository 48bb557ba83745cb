package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uzdict/dictadmin/internal/catalog"
)

func TestNewDictionaryDraft(t *testing.T) {
	assert.Equal(t, catalog.DictionaryTypeContemporary, NewDictionaryDraft(catalog.DictionaryTypeContemporary).Type)
	// No active tab falls back to historical.
	assert.Equal(t, catalog.DictionaryTypeHistorical, NewDictionaryDraft("").Type)
}

func TestNewWordDraft_PreselectsFirstDictionary(t *testing.T) {
	dictionaries := []catalog.Dictionary{
		{ID: "d1", Name: "Devon"},
		{ID: "d2", Name: "Modern"},
	}
	assert.Equal(t, "d1", NewWordDraft(dictionaries).Dictionary)
	assert.Empty(t, NewWordDraft(nil).Dictionary)
}

func TestEditWordDraft_ResolvesRefsToIDs(t *testing.T) {
	word := catalog.Word{
		ID:         "w1",
		Name:       "Olma",
		Meaning:    "apple",
		Dictionary: catalog.Ref{ID: "d1", Name: "Devon"},
		Department: catalog.Ref{ID: "dep1", Name: "Mevalar"},
		Category:   catalog.Ref{ID: "c1", Name: "Oziq"},
		ImageURL:   "https://cdn.example.com/olma.png",
	}

	draft := EditWordDraft(word)
	assert.Equal(t, "w1", draft.ID)
	assert.Equal(t, "d1", draft.Dictionary)
	assert.Equal(t, "dep1", draft.Department)
	assert.Equal(t, "c1", draft.Category)
	assert.Equal(t, "https://cdn.example.com/olma.png", draft.ImageURL)
	assert.Empty(t, draft.ImagePath)
}

func TestEditCategoryDraft_ResolvesRefsToIDs(t *testing.T) {
	category := catalog.Category{
		ID:         "c1",
		Name:       "Oziq",
		Dictionary: catalog.Ref{ID: "d1"},
		Department: catalog.Ref{ID: "dep1"},
	}

	draft := EditCategoryDraft(category)
	assert.Equal(t, "c1", draft.ID)
	assert.Equal(t, "d1", draft.Dictionary)
	assert.Equal(t, "dep1", draft.Department)
}
