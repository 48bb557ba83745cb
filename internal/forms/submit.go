package forms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/uzdict/dictadmin/internal/api"
	"github.com/uzdict/dictadmin/internal/catalog"
)

// ValidationError is a local pre-flight failure. No network call has been
// made when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Uploader covers the gateway's image upload. *api.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, fileName string, contents io.Reader) (api.UploadResult, error)
}

// DictionaryWriter covers the dictionary write calls. *catalog.Service
// satisfies it, as do the other writer interfaces below.
type DictionaryWriter interface {
	CreateDictionary(ctx context.Context, input catalog.DictionaryInput) (catalog.Dictionary, error)
	UpdateDictionary(ctx context.Context, id string, input catalog.DictionaryInput) (catalog.Dictionary, error)
}

type DepartmentWriter interface {
	CreateDepartment(ctx context.Context, input catalog.DepartmentInput) (catalog.Department, error)
	UpdateDepartment(ctx context.Context, id string, input catalog.DepartmentInput) (catalog.Department, error)
}

type CategoryWriter interface {
	CreateCategory(ctx context.Context, input catalog.CategoryInput) (catalog.Category, error)
	UpdateCategory(ctx context.Context, id string, input catalog.CategoryInput) (catalog.Category, error)
}

type WordWriter interface {
	CreateWord(ctx context.Context, input catalog.WordInput) (catalog.Word, error)
	UpdateWord(ctx context.Context, id string, input catalog.WordInput) (catalog.Word, error)
}

// Submitter runs the submit protocol for every draft kind: validate
// locally, upload a newly selected image, build the payload, and call the
// gateway. The returned entity is what the caller merges into its entity
// list; on error nothing has been merged and the draft stays intact.
type Submitter struct {
	validate *validator.Validate
	trans    ut.Translator
	uploader Uploader
}

func NewSubmitter(uploader Uploader) (*Submitter, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Submitter{
		validate: validate,
		trans:    trans,
		uploader: uploader,
	}, nil
}

func (s *Submitter) check(draft any) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldError.Translate(s.trans))
	}
	return &ValidationError{Message: strings.Join(messages, "; ")}
}

// resolveImage uploads a newly selected image file and returns its stored
// URL. Without a new selection the draft's existing URL is kept.
func (s *Submitter) resolveImage(ctx context.Context, imagePath, imageURL string) (string, error) {
	if imagePath == "" {
		return imageURL, nil
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("os.Open(%s) > %w", imagePath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := s.uploader.Upload(ctx, filepath.Base(imagePath), file)
	if err != nil {
		return "", fmt.Errorf("uploader.Upload > %w", err)
	}
	return result.URL, nil
}

// SubmitDictionary runs the submit protocol for a dictionary draft. The
// existing set backs the unique-name check on create.
func (s *Submitter) SubmitDictionary(
	ctx context.Context,
	writer DictionaryWriter,
	existing []catalog.Dictionary,
	draft DictionaryDraft,
) (catalog.Dictionary, error) {
	// Trim before validating so a whitespace-only name fails required.
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := s.check(draft); err != nil {
		return catalog.Dictionary{}, err
	}

	if draft.ID == "" {
		for _, dictionary := range existing {
			if strings.EqualFold(strings.TrimSpace(dictionary.Name), draft.Name) {
				return catalog.Dictionary{}, &ValidationError{Message: "a dictionary with this name already exists"}
			}
		}
	}

	imageURL, err := s.resolveImage(ctx, draft.ImagePath, draft.ImageURL)
	if err != nil {
		return catalog.Dictionary{}, err
	}

	input := catalog.DictionaryInput{
		Name:        draft.Name,
		Type:        draft.Type,
		ImageURL:    imageURL,
		Description: draft.Description,
	}

	if draft.ID == "" {
		created, err := writer.CreateDictionary(ctx, input)
		if err != nil {
			return catalog.Dictionary{}, fmt.Errorf("writer.CreateDictionary > %w", err)
		}
		return created, nil
	}

	updated, err := writer.UpdateDictionary(ctx, draft.ID, input)
	if err != nil {
		return catalog.Dictionary{}, fmt.Errorf("writer.UpdateDictionary > %w", err)
	}
	return updated, nil
}

// SubmitDepartment runs the submit protocol for a department draft.
func (s *Submitter) SubmitDepartment(
	ctx context.Context,
	writer DepartmentWriter,
	draft DepartmentDraft,
) (catalog.Department, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := s.check(draft); err != nil {
		return catalog.Department{}, err
	}

	imageURL, err := s.resolveImage(ctx, draft.ImagePath, draft.ImageURL)
	if err != nil {
		return catalog.Department{}, err
	}

	input := catalog.DepartmentInput{
		Name:         draft.Name,
		DictionaryID: draft.Dictionary,
		ImageURL:     imageURL,
		Description:  draft.Description,
	}

	if draft.ID == "" {
		input.Name = catalog.Capitalize(input.Name)
		created, err := writer.CreateDepartment(ctx, input)
		if err != nil {
			return catalog.Department{}, fmt.Errorf("writer.CreateDepartment > %w", err)
		}
		return created, nil
	}

	updated, err := writer.UpdateDepartment(ctx, draft.ID, input)
	if err != nil {
		return catalog.Department{}, fmt.Errorf("writer.UpdateDepartment > %w", err)
	}
	return updated, nil
}

// SubmitCategory runs the submit protocol for a category draft.
func (s *Submitter) SubmitCategory(
	ctx context.Context,
	writer CategoryWriter,
	draft CategoryDraft,
) (catalog.Category, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := s.check(draft); err != nil {
		return catalog.Category{}, err
	}

	input := catalog.CategoryInput{
		Name:         draft.Name,
		DictionaryID: draft.Dictionary,
		DepartmentID: draft.Department,
	}

	if draft.ID == "" {
		created, err := writer.CreateCategory(ctx, input)
		if err != nil {
			return catalog.Category{}, fmt.Errorf("writer.CreateCategory > %w", err)
		}
		return created, nil
	}

	updated, err := writer.UpdateCategory(ctx, draft.ID, input)
	if err != nil {
		return catalog.Category{}, fmt.Errorf("writer.UpdateCategory > %w", err)
	}
	return updated, nil
}

// SubmitWord runs the submit protocol for a word draft. The owning
// dictionary's type is mirrored into the payload and the word name is
// stored capitalized.
func (s *Submitter) SubmitWord(
	ctx context.Context,
	writer WordWriter,
	dictionaries []catalog.Dictionary,
	draft WordDraft,
) (catalog.Word, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Meaning = strings.TrimSpace(draft.Meaning)
	if err := s.check(draft); err != nil {
		return catalog.Word{}, err
	}

	imageURL, err := s.resolveImage(ctx, draft.ImagePath, draft.ImageURL)
	if err != nil {
		return catalog.Word{}, err
	}

	var dictionaryType catalog.DictionaryType
	for _, dictionary := range dictionaries {
		if dictionary.ID == draft.Dictionary {
			dictionaryType = dictionary.Type
			break
		}
	}

	input := catalog.WordInput{
		Name:           catalog.Capitalize(draft.Name),
		Meaning:        draft.Meaning,
		DictionaryID:   draft.Dictionary,
		DepartmentID:   draft.Department,
		CategoryID:     draft.Category,
		DictionaryType: dictionaryType,
		ImageURL:       imageURL,
	}

	if draft.ID == "" {
		created, err := writer.CreateWord(ctx, input)
		if err != nil {
			return catalog.Word{}, fmt.Errorf("writer.CreateWord > %w", err)
		}
		return created, nil
	}

	updated, err := writer.UpdateWord(ctx, draft.ID, input)
	if err != nil {
		return catalog.Word{}, fmt.Errorf("writer.UpdateWord > %w", err)
	}
	return updated, nil
}
