// Package catalog holds the dictionary catalog entities as consumed from the
// REST backend, plus the per-entity CRUD services.
package catalog

import (
	"bytes"
	"encoding/json"
	"time"
	"unicode"
	"unicode/utf8"
)

// DictionaryType is one of the two catalog groupings.
type DictionaryType string

const (
	DictionaryTypeHistorical   DictionaryType = "historical"
	DictionaryTypeContemporary DictionaryType = "contemporary"
)

// AllDictionaryTypes lists the valid dictionary types.
var AllDictionaryTypes = []DictionaryType{
	DictionaryTypeHistorical,
	DictionaryTypeContemporary,
}

// Ref points at a parent entity. Backends return either a bare id string or
// an embedded object; both decode to the id plus an optional display name.
// Marshalling always produces the bare id, which is what write payloads need.
type Ref struct {
	ID   string
	Name string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	var embedded struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return err
	}
	id := embedded.MongoID
	if id == "" {
		id = embedded.ID
	}
	*r = Ref{ID: id, Name: embedded.Name}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// Dictionary is the top-level grouping. Names are unique within the set,
// case-insensitively.
type Dictionary struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Type        DictionaryType `json:"type"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (d *Dictionary) UnmarshalJSON(data []byte) error {
	type alias Dictionary
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = aux.AltID
	}
	return nil
}

func (d Dictionary) EntityID() string { return d.ID }
func (d Dictionary) EntityName() string { return d.Name }
func (d Dictionary) EntityCreatedAt() time.Time { return d.CreatedAt }

// Department is a named subdivision of a dictionary.
type Department struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Dictionary  Ref       `json:"dictionary"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d *Department) UnmarshalJSON(data []byte) error {
	type alias Department
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = aux.AltID
	}
	return nil
}

func (d Department) EntityID() string { return d.ID }
func (d Department) EntityName() string { return d.Name }
func (d Department) EntityCreatedAt() time.Time { return d.CreatedAt }

// Category groups words within a department/dictionary pair.
type Category struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Dictionary Ref       `json:"dictionary"`
	Department Ref       `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.AltID
	}
	return nil
}

func (c Category) EntityID() string { return c.ID }
func (c Category) EntityName() string { return c.Name }
func (c Category) EntityCreatedAt() time.Time { return c.CreatedAt }

// Word is a catalog entry. It requires all three parent references.
type Word struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Meaning    string    `json:"meaning"`
	Dictionary Ref       `json:"dictionary"`
	Department Ref       `json:"department"`
	Category   Ref       `json:"category"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (w *Word) UnmarshalJSON(data []byte) error {
	type alias Word
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = aux.AltID
	}
	return nil
}

func (w Word) EntityID() string { return w.ID }
func (w Word) EntityName() string { return w.Name }
func (w Word) EntityCreatedAt() time.Time { return w.CreatedAt }

// Capitalize upper-cases the first letter of a name. Word and department
// names are stored in this form.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
