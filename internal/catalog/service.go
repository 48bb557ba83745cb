package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/uzdict/dictadmin/internal/api"
)

// Service issues the id-keyed REST calls for every catalog entity.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// DictionaryInput is the write payload for dictionaries. Blank optional
// fields are omitted rather than sent as empty strings.
type DictionaryInput struct {
	Name        string         `json:"name"`
	Type        DictionaryType `json:"type"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Description string         `json:"description,omitempty"`
}

// DepartmentInput is the write payload for departments.
type DepartmentInput struct {
	Name         string `json:"name"`
	DictionaryID string `json:"dictionaryId"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

// CategoryInput is the write payload for categories.
type CategoryInput struct {
	Name         string `json:"name"`
	DictionaryID string `json:"dictionary"`
	DepartmentID string `json:"department"`
}

// WordInput is the write payload for words. DictionaryType mirrors the
// owning dictionary's type at submission time.
type WordInput struct {
	Name           string         `json:"name"`
	Meaning        string         `json:"meaning"`
	DictionaryID   string         `json:"dictionary"`
	DepartmentID   string         `json:"department"`
	CategoryID     string         `json:"category"`
	DictionaryType DictionaryType `json:"dictType,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
}

func (s *Service) ListDictionaries(ctx context.Context) ([]Dictionary, error) {
	var dictionaries []Dictionary
	if err := s.client.Get(ctx, "/dictionaries", &dictionaries); err != nil {
		return nil, fmt.Errorf("client.Get(/dictionaries) > %w", err)
	}
	return dictionaries, nil
}

func (s *Service) CreateDictionary(ctx context.Context, input DictionaryInput) (Dictionary, error) {
	var created Dictionary
	if err := s.client.Post(ctx, "/dictionaries", input, &created); err != nil {
		return Dictionary{}, fmt.Errorf("client.Post(/dictionaries) > %w", err)
	}
	return created, nil
}

func (s *Service) UpdateDictionary(ctx context.Context, id string, input DictionaryInput) (Dictionary, error) {
	var updated Dictionary
	if err := s.client.Put(ctx, "/dictionaries/"+id, input, &updated); err != nil {
		return Dictionary{}, fmt.Errorf("client.Put(/dictionaries/%s) > %w", id, err)
	}
	return updated, nil
}

func (s *Service) DeleteDictionary(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/dictionaries/"+id); err != nil {
		return fmt.Errorf("client.Delete(/dictionaries/%s) > %w", id, err)
	}
	return nil
}

// departmentList tolerates both the bare-array and the wrapped
// {"departments": [...]} list response shapes.
type departmentList struct {
	Departments []Department
}

func (l *departmentList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &l.Departments)
	}
	var wrapped struct {
		Departments []Department `json:"departments"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	l.Departments = wrapped.Departments
	return nil
}

// departmentEnvelope tolerates both the bare and the wrapped
// {"department": {...}} write response shapes.
type departmentEnvelope struct {
	Department Department
}

func (e *departmentEnvelope) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Department *Department `json:"department"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Department != nil && wrapped.Department.ID != "" {
		e.Department = *wrapped.Department
		return nil
	}
	return json.Unmarshal(data, &e.Department)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	var list departmentList
	if err := s.client.Get(ctx, "/departments", &list); err != nil {
		return nil, fmt.Errorf("client.Get(/departments) > %w", err)
	}
	return list.Departments, nil
}

func (s *Service) CreateDepartment(ctx context.Context, input DepartmentInput) (Department, error) {
	var envelope departmentEnvelope
	if err := s.client.Post(ctx, "/departments", input, &envelope); err != nil {
		return Department{}, fmt.Errorf("client.Post(/departments) > %w", err)
	}
	return envelope.Department, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, input DepartmentInput) (Department, error) {
	var envelope departmentEnvelope
	if err := s.client.Put(ctx, "/departments/"+id, input, &envelope); err != nil {
		return Department{}, fmt.Errorf("client.Put(/departments/%s) > %w", id, err)
	}
	return envelope.Department, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/departments/"+id); err != nil {
		return fmt.Errorf("client.Delete(/departments/%s) > %w", id, err)
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.client.Get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("client.Get(/categories) > %w", err)
	}
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (Category, error) {
	var created Category
	if err := s.client.Post(ctx, "/categories", input, &created); err != nil {
		return Category{}, fmt.Errorf("client.Post(/categories) > %w", err)
	}
	return created, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, input CategoryInput) (Category, error) {
	var updated Category
	if err := s.client.Put(ctx, "/categories/"+id, input, &updated); err != nil {
		return Category{}, fmt.Errorf("client.Put(/categories/%s) > %w", id, err)
	}
	return updated, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/categories/"+id); err != nil {
		return fmt.Errorf("client.Delete(/categories/%s) > %w", id, err)
	}
	return nil
}

func (s *Service) ListWords(ctx context.Context) ([]Word, error) {
	var words []Word
	if err := s.client.Get(ctx, "/words", &words); err != nil {
		return nil, fmt.Errorf("client.Get(/words) > %w", err)
	}
	return words, nil
}

func (s *Service) CreateWord(ctx context.Context, input WordInput) (Word, error) {
	var created Word
	if err := s.client.Post(ctx, "/words", input, &created); err != nil {
		return Word{}, fmt.Errorf("client.Post(/words) > %w", err)
	}
	return created, nil
}

func (s *Service) UpdateWord(ctx context.Context, id string, input WordInput) (Word, error) {
	var updated Word
	if err := s.client.Put(ctx, "/words/"+id, input, &updated); err != nil {
		return Word{}, fmt.Errorf("client.Put(/words/%s) > %w", id, err)
	}
	return updated, nil
}

func (s *Service) DeleteWord(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, "/words/"+id); err != nil {
		return fmt.Errorf("client.Delete(/words/%s) > %w", id, err)
	}
	return nil
}
