// Package forms implements the transient edit buffers behind the add/edit
// flows: a draft per entity, local validation, the upload-first image step,
// and the payload build. On success the mutation is applied to the entity
// list; on failure the draft is left intact for the caller to re-present.
package forms

import (
	"github.com/uzdict/dictadmin/internal/catalog"
)

// DictionaryDraft is the edit buffer for a dictionary. An empty ID means
// create, otherwise update.
type DictionaryDraft struct {
	ID          string
	Name        string                 `form:"name" validate:"required"`
	Type        catalog.DictionaryType `form:"type" validate:"required,oneof=historical contemporary"`
	Description string
	ImageURL    string
	ImagePath   string
}

// NewDictionaryDraft seeds a create draft. The active tab's type is the
// default selection.
func NewDictionaryDraft(activeType catalog.DictionaryType) DictionaryDraft {
	if activeType == "" {
		activeType = catalog.DictionaryTypeHistorical
	}
	return DictionaryDraft{Type: activeType}
}

// EditDictionaryDraft seeds an edit draft from the current field values.
func EditDictionaryDraft(d catalog.Dictionary) DictionaryDraft {
	return DictionaryDraft{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

// DepartmentDraft is the edit buffer for a department.
type DepartmentDraft struct {
	ID          string
	Name        string `form:"name" validate:"required"`
	Dictionary  string `form:"dictionary" validate:"required"`
	Description string
	ImageURL    string
	ImagePath   string
}

// NewDepartmentDraft seeds a create draft with the first available
// dictionary preselected.
func NewDepartmentDraft(dictionaries []catalog.Dictionary) DepartmentDraft {
	var draft DepartmentDraft
	if len(dictionaries) > 0 {
		draft.Dictionary = dictionaries[0].ID
	}
	return draft
}

// EditDepartmentDraft seeds an edit draft, resolving the dictionary
// reference to a bare id.
func EditDepartmentDraft(d catalog.Department) DepartmentDraft {
	return DepartmentDraft{
		ID:          d.ID,
		Name:        d.Name,
		Dictionary:  d.Dictionary.ID,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

// CategoryDraft is the edit buffer for a category.
type CategoryDraft struct {
	ID         string
	Name       string `form:"name" validate:"required"`
	Dictionary string `form:"dictionary" validate:"required"`
	Department string `form:"department" validate:"required"`
}

// NewCategoryDraft seeds a create draft with the first available
// dictionary preselected.
func NewCategoryDraft(dictionaries []catalog.Dictionary) CategoryDraft {
	var draft CategoryDraft
	if len(dictionaries) > 0 {
		draft.Dictionary = dictionaries[0].ID
	}
	return draft
}

// EditCategoryDraft seeds an edit draft, resolving references to bare ids.
func EditCategoryDraft(c catalog.Category) CategoryDraft {
	return CategoryDraft{
		ID:         c.ID,
		Name:       c.Name,
		Dictionary: c.Dictionary.ID,
		Department: c.Department.ID,
	}
}

// WordDraft is the edit buffer for a word. All three parent references are
// required before submission.
type WordDraft struct {
	ID         string
	Name       string `form:"name" validate:"required"`
	Meaning    string `form:"meaning" validate:"required"`
	Dictionary string `form:"dictionary" validate:"required"`
	Department string `form:"department" validate:"required"`
	Category   string `form:"category" validate:"required"`
	ImageURL   string
	ImagePath  string
}

// NewWordDraft seeds a create draft with the first available dictionary
// preselected.
func NewWordDraft(dictionaries []catalog.Dictionary) WordDraft {
	var draft WordDraft
	if len(dictionaries) > 0 {
		draft.Dictionary = dictionaries[0].ID
	}
	return draft
}

// EditWordDraft seeds an edit draft, resolving references to bare ids.
func EditWordDraft(w catalog.Word) WordDraft {
	return WordDraft{
		ID:         w.ID,
		Name:       w.Name,
		Meaning:    w.Meaning,
		Dictionary: w.Dictionary.ID,
		Department: w.Department.ID,
		Category:   w.Category.ID,
		ImageURL:   w.ImageURL,
	}
}
