package tui

import "github.com/uzdict/dictadmin/internal/catalog"

// Screen represents the different screens in the application.
type Screen string

const (
	ScreenLogin   Screen = "login"
	ScreenCatalog Screen = "catalog"
)

type entityKind int

const (
	kindDictionaries entityKind = iota
	kindDepartments
	kindCategories
	kindWords
)

func (k entityKind) label() string {
	switch k {
	case kindDictionaries:
		return "Dictionaries"
	case kindDepartments:
		return "Departments"
	case kindCategories:
		return "Categories"
	default:
		return "Words"
	}
}

type dictionariesLoadedMsg struct {
	items []catalog.Dictionary
	err   error
}

type departmentsLoadedMsg struct {
	items []catalog.Department
	err   error
}

type categoriesLoadedMsg struct {
	items []catalog.Category
	err   error
}

type wordsLoadedMsg struct {
	items []catalog.Word
	err   error
}

type loginDoneMsg struct {
	token string
	err   error
}

// authenticatedMsg switches the application to the catalog screen.
type authenticatedMsg struct{}

// logoutRequestMsg clears the session and resets to the login screen.
type logoutRequestMsg struct{}

type dictionarySavedMsg struct {
	item    catalog.Dictionary
	created bool
	err     error
}

type departmentSavedMsg struct {
	item    catalog.Department
	created bool
	err     error
}

type categorySavedMsg struct {
	item    catalog.Category
	created bool
	err     error
}

type wordSavedMsg struct {
	item    catalog.Word
	created bool
	err     error
}

type entityDeletedMsg struct {
	kind entityKind
	id   string
	err  error
}

type clearNoticeMsg struct{}
