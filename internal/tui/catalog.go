package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
	"github.com/uzdict/dictadmin/internal/listctl"
)

const (
	requestTimeout = 30 * time.Second
	noticeDuration = 2 * time.Second
)

type notice struct {
	text    string
	isError bool
}

func (n notice) render() string {
	if n.isError {
		return errorNoticeStyle.Render(n.text)
	}
	return successNoticeStyle.Render(n.text)
}

// CatalogModel is the authenticated screen. It shows one entity
// collection at a time and keeps the other collections loaded so
// cross-references resolve to names instead of ids.
type CatalogModel struct {
	app  *App
	kind entityKind
	tab  catalog.DictionaryType

	dictionaries *listctl.List[catalog.Dictionary]
	departments  *listctl.List[catalog.Department]
	categories   *listctl.List[catalog.Category]
	words        *listctl.List[catalog.Word]

	pending int

	searchInput textinput.Model
	searching   bool

	form        *FormModel
	confirmID   string
	confirmName string
	deleting    bool

	cursor int
	notice notice

	width  int
	height int
}

func newCatalogModel(app *App) CatalogModel {
	search := textinput.New()
	search.Placeholder = "search by name"
	search.CharLimit = 64

	m := CatalogModel{
		app:          app,
		kind:         kindDictionaries,
		tab:          catalog.DictionaryTypeHistorical,
		pending:      4, // Init fires the four loads
		dictionaries: listctl.New[catalog.Dictionary](),
		departments:  listctl.New[catalog.Department](),
		categories:   listctl.New[catalog.Category](),
		words:        listctl.New[catalog.Word](),
		searchInput:  search,
	}
	if app.PageSize > 0 {
		m.departments.SetPageSize(app.PageSize)
		m.categories.SetPageSize(app.PageSize)
		m.words.SetPageSize(app.PageSize)
	}
	return m
}

func (m CatalogModel) Init() tea.Cmd {
	return m.reloadCmd()
}

// reloadCmd fetches all four collections concurrently. Each one lands as
// its own message so a slow collection never blocks the others.
func (m CatalogModel) reloadCmd() tea.Cmd {
	svc := m.app.Service
	return tea.Batch(
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			items, err := svc.ListDictionaries(ctx)
			return dictionariesLoadedMsg{items: items, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			items, err := svc.ListDepartments(ctx)
			return departmentsLoadedMsg{items: items, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			items, err := svc.ListCategories(ctx)
			return categoriesLoadedMsg{items: items, err: err}
		},
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			items, err := svc.ListWords(ctx)
			return wordsLoadedMsg{items: items, err: err}
		},
	)
}

func noticeCmd() tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *CatalogModel) fail(err error) tea.Cmd {
	m.notice = notice{text: err.Error(), isError: true}
	return noticeCmd()
}

func (m *CatalogModel) succeed(text string) tea.Cmd {
	m.notice = notice{text: text}
	return noticeCmd()
}

// visibleDictionaries applies the type tab unless a search is active. A
// search spans both types, matching the gallery behavior of the other
// collections.
func (m CatalogModel) visibleDictionaries() []catalog.Dictionary {
	active := m.dictionaries.Active()
	if m.dictionaries.SearchTerm() != "" {
		return active
	}
	out := make([]catalog.Dictionary, 0, len(active))
	for _, d := range active {
		if d.Type == m.tab {
			out = append(out, d)
		}
	}
	return out
}

func (m CatalogModel) visibleCount() int {
	switch m.kind {
	case kindDictionaries:
		return len(m.visibleDictionaries())
	case kindDepartments:
		return len(m.departments.Window())
	case kindCategories:
		return len(m.categories.Window())
	default:
		return len(m.words.Window())
	}
}

func (m *CatalogModel) clampCursor() {
	count := m.visibleCount()
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m CatalogModel) dictionaryName(ref catalog.Ref) string {
	if ref.Name != "" {
		return ref.Name
	}
	if d, ok := m.dictionaries.Find(ref.ID); ok {
		return d.Name
	}
	return placeholderDash
}

func (m CatalogModel) departmentName(ref catalog.Ref) string {
	if ref.Name != "" {
		return ref.Name
	}
	if d, ok := m.departments.Find(ref.ID); ok {
		return d.Name
	}
	return placeholderDash
}

func (m CatalogModel) categoryName(ref catalog.Ref) string {
	if ref.Name != "" {
		return ref.Name
	}
	if c, ok := m.categories.Find(ref.ID); ok {
		return c.Name
	}
	return placeholderDash
}

func (m *CatalogModel) applySearch(term string) {
	switch m.kind {
	case kindDictionaries:
		m.dictionaries.Search(term)
	case kindDepartments:
		m.departments.Search(term)
	case kindCategories:
		m.categories.Search(term)
	default:
		m.words.Search(term)
	}
	m.cursor = 0
}

func (m *CatalogModel) clearSearch() {
	switch m.kind {
	case kindDictionaries:
		m.dictionaries.ClearSearch()
	case kindDepartments:
		m.departments.ClearSearch()
	case kindCategories:
		m.categories.ClearSearch()
	default:
		m.words.ClearSearch()
	}
	m.cursor = 0
}

func (m *CatalogModel) toggleSort() {
	var next listctl.SortKey
	switch m.kind {
	case kindDictionaries:
		next = otherSort(m.dictionaries.Sort())
		m.dictionaries.SortBy(next)
	case kindDepartments:
		next = otherSort(m.departments.Sort())
		m.departments.SortBy(next)
	case kindCategories:
		next = otherSort(m.categories.Sort())
		m.categories.SortBy(next)
	default:
		next = otherSort(m.words.Sort())
		m.words.SortBy(next)
	}
}

func otherSort(key listctl.SortKey) listctl.SortKey {
	if key == listctl.SortByName {
		return listctl.SortByCreated
	}
	return listctl.SortByName
}

func (m CatalogModel) currentSort() listctl.SortKey {
	switch m.kind {
	case kindDictionaries:
		return m.dictionaries.Sort()
	case kindDepartments:
		return m.departments.Sort()
	case kindCategories:
		return m.categories.Sort()
	default:
		return m.words.Sort()
	}
}

func (m CatalogModel) currentSearchTerm() string {
	switch m.kind {
	case kindDictionaries:
		return m.dictionaries.SearchTerm()
	case kindDepartments:
		return m.departments.SearchTerm()
	case kindCategories:
		return m.categories.SearchTerm()
	default:
		return m.words.SearchTerm()
	}
}

func (m *CatalogModel) turnPage(delta int) {
	switch m.kind {
	case kindDictionaries:
		// Dictionaries are not paginated.
	case kindDepartments:
		m.departments.SetPage(m.departments.Page() + delta)
	case kindCategories:
		m.categories.SetPage(m.categories.Page() + delta)
	default:
		m.words.SetPage(m.words.Page() + delta)
	}
	m.cursor = 0
}

func (m *CatalogModel) deleteCmd(kind entityKind, id string) tea.Cmd {
	svc := m.app.Service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		switch kind {
		case kindDictionaries:
			err = svc.DeleteDictionary(ctx, id)
		case kindDepartments:
			err = svc.DeleteDepartment(ctx, id)
		case kindCategories:
			err = svc.DeleteCategory(ctx, id)
		default:
			err = svc.DeleteWord(ctx, id)
		}
		return entityDeletedMsg{kind: kind, id: id, err: err}
	}
}

func (m CatalogModel) Update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dictionariesLoadedMsg:
		m.pending--
		if msg.err != nil {
			return m, m.fail(fmt.Errorf("load dictionaries > %w", msg.err))
		}
		_ = m.dictionaries.Load(context.Background(), func(context.Context) ([]catalog.Dictionary, error) {
			return msg.items, nil
		})
		m.clampCursor()
		return m, nil

	case departmentsLoadedMsg:
		m.pending--
		if msg.err != nil {
			return m, m.fail(fmt.Errorf("load departments > %w", msg.err))
		}
		_ = m.departments.Load(context.Background(), func(context.Context) ([]catalog.Department, error) {
			return msg.items, nil
		})
		m.clampCursor()
		return m, nil

	case categoriesLoadedMsg:
		m.pending--
		if msg.err != nil {
			return m, m.fail(fmt.Errorf("load categories > %w", msg.err))
		}
		_ = m.categories.Load(context.Background(), func(context.Context) ([]catalog.Category, error) {
			return msg.items, nil
		})
		m.clampCursor()
		return m, nil

	case wordsLoadedMsg:
		m.pending--
		if msg.err != nil {
			return m, m.fail(fmt.Errorf("load words > %w", msg.err))
		}
		_ = m.words.Load(context.Background(), func(context.Context) ([]catalog.Word, error) {
			return msg.items, nil
		})
		m.clampCursor()
		return m, nil

	case dictionarySavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.fail(msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		if msg.created {
			m.dictionaries.ApplyCreate(msg.item)
			// Follow the new dictionary to its type tab so it is visible.
			m.tab = msg.item.Type
		} else {
			m.dictionaries.ApplyUpdate(msg.item)
		}
		m.form = nil
		m.clampCursor()
		return m, m.succeed("dictionary saved")

	case departmentSavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.fail(msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		if msg.created {
			m.departments.ApplyCreate(msg.item)
		} else {
			m.departments.ApplyUpdate(msg.item)
		}
		m.form = nil
		m.clampCursor()
		return m, m.succeed("department saved")

	case categorySavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.fail(msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		if msg.created {
			m.categories.ApplyCreate(msg.item)
		} else {
			m.categories.ApplyUpdate(msg.item)
		}
		m.form = nil
		m.clampCursor()
		return m, m.succeed("category saved")

	case wordSavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.fail(msg.err)
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		if msg.created {
			m.words.ApplyCreate(msg.item)
		} else {
			m.words.ApplyUpdate(msg.item)
		}
		m.form = nil
		m.clampCursor()
		return m, m.succeed("word saved")

	case entityDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		switch msg.kind {
		case kindDictionaries:
			m.dictionaries.ApplyDelete(msg.id)
		case kindDepartments:
			m.departments.ApplyDelete(msg.id)
		case kindCategories:
			m.categories.ApplyDelete(msg.id)
		default:
			m.words.ApplyDelete(msg.id)
		}
		m.clampCursor()
		return m, m.succeed("deleted")

	case clearNoticeMsg:
		m.notice = notice{}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m CatalogModel) handleKey(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	// Modal form swallows all keys while open.
	if m.form != nil {
		cmd, closed := m.form.Update(msg)
		if closed {
			m.form = nil
		}
		return m, cmd
	}

	// Delete confirmation.
	if m.confirmID != "" {
		switch msg.String() {
		case "y", "Y":
			id := m.confirmID
			m.confirmID = ""
			m.confirmName = ""
			m.deleting = true
			return m, m.deleteCmd(m.kind, id)
		case "n", "N", "esc":
			m.confirmID = ""
			m.confirmName = ""
		}
		return m, nil
	}

	// Search input.
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			term := strings.TrimSpace(m.searchInput.Value())
			if term == "" {
				m.clearSearch()
			} else {
				m.applySearch(term)
			}
			return m, nil
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			m.clearSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "L":
		return m, func() tea.Msg { return logoutRequestMsg{} }
	case "1":
		m.switchKind(kindDictionaries)
	case "2":
		m.switchKind(kindDepartments)
	case "3":
		m.switchKind(kindCategories)
	case "4":
		m.switchKind(kindWords)
	case "t":
		if m.kind == kindDictionaries {
			if m.tab == catalog.DictionaryTypeHistorical {
				m.tab = catalog.DictionaryTypeContemporary
			} else {
				m.tab = catalog.DictionaryTypeHistorical
			}
			m.cursor = 0
		}
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.currentSearchTerm())
		m.searchInput.Focus()
		return m, textinput.Blink
	case "s":
		m.toggleSort()
		m.cursor = 0
	case "left", "h":
		m.turnPage(-1)
	case "right", "l":
		m.turnPage(1)
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "r":
		m.pending = 4
		return m, m.reloadCmd()
	case "a":
		m.openForm(false)
		return m, textinput.Blink
	case "e":
		m.openForm(true)
		return m, textinput.Blink
	case "d":
		if m.deleting {
			return m, nil
		}
		id, name := m.selectedEntity()
		if id != "" {
			m.confirmID = id
			m.confirmName = name
		}
	}
	return m, nil
}

func (m *CatalogModel) switchKind(kind entityKind) {
	if m.kind == kind {
		return
	}
	m.kind = kind
	m.cursor = 0
	m.searching = false
	m.searchInput.SetValue("")
}

// selectedEntity resolves the cursor to an id and a display name.
func (m CatalogModel) selectedEntity() (string, string) {
	switch m.kind {
	case kindDictionaries:
		items := m.visibleDictionaries()
		if m.cursor < len(items) {
			return items[m.cursor].ID, items[m.cursor].Name
		}
	case kindDepartments:
		items := m.departments.Window()
		if m.cursor < len(items) {
			return items[m.cursor].ID, items[m.cursor].Name
		}
	case kindCategories:
		items := m.categories.Window()
		if m.cursor < len(items) {
			return items[m.cursor].ID, items[m.cursor].Name
		}
	default:
		items := m.words.Window()
		if m.cursor < len(items) {
			return items[m.cursor].ID, items[m.cursor].Name
		}
	}
	return "", ""
}

func (m CatalogModel) dictionaryOptions() []selectOption {
	items := m.dictionaries.Items()
	options := make([]selectOption, 0, len(items))
	for _, d := range items {
		options = append(options, selectOption{id: d.ID, label: d.Name})
	}
	return options
}

func (m CatalogModel) departmentOptions() []selectOption {
	items := m.departments.Items()
	options := make([]selectOption, 0, len(items))
	for _, d := range items {
		label := d.Name
		if name := m.dictionaryName(d.Dictionary); name != placeholderDash {
			label = fmt.Sprintf("%s (%s)", d.Name, name)
		}
		options = append(options, selectOption{id: d.ID, label: label})
	}
	return options
}

func (m CatalogModel) categoryOptions() []selectOption {
	items := m.categories.Items()
	options := make([]selectOption, 0, len(items))
	for _, c := range items {
		label := c.Name
		if name := m.departmentName(c.Department); name != placeholderDash {
			label = fmt.Sprintf("%s (%s)", c.Name, name)
		}
		options = append(options, selectOption{id: c.ID, label: label})
	}
	return options
}

func (m *CatalogModel) openForm(edit bool) {
	switch m.kind {
	case kindDictionaries:
		var existing *catalog.Dictionary
		if edit {
			items := m.visibleDictionaries()
			if m.cursor >= len(items) {
				return
			}
			existing = &items[m.cursor]
		}
		m.openDictionaryForm(existing)
	case kindDepartments:
		var existing *catalog.Department
		if edit {
			items := m.departments.Window()
			if m.cursor >= len(items) {
				return
			}
			existing = &items[m.cursor]
		}
		m.openDepartmentForm(existing)
	case kindCategories:
		var existing *catalog.Category
		if edit {
			items := m.categories.Window()
			if m.cursor >= len(items) {
				return
			}
			existing = &items[m.cursor]
		}
		m.openCategoryForm(existing)
	default:
		var existing *catalog.Word
		if edit {
			items := m.words.Window()
			if m.cursor >= len(items) {
				return
			}
			existing = &items[m.cursor]
		}
		m.openWordForm(existing)
	}
}

func (m *CatalogModel) openDictionaryForm(existing *catalog.Dictionary) {
	draft := forms.NewDictionaryDraft(m.tab)
	title := "Add Dictionary"
	if existing != nil {
		draft = forms.EditDictionaryDraft(*existing)
		title = "Edit Dictionary"
	}

	typeOptions := make([]selectOption, 0, len(catalog.AllDictionaryTypes))
	for _, t := range catalog.AllDictionaryTypes {
		typeOptions = append(typeOptions, selectOption{id: string(t), label: string(t)})
	}
	fields := []formField{
		newTextField("name", "Name", draft.Name, "dictionary name"),
		newSelectField("type", "Type", typeOptions, string(draft.Type)),
		newTextField("description", "Description", draft.Description, "optional"),
		newTextField("image", "Image file", draft.ImagePath, "optional path"),
	}

	app := m.app
	base := draft
	existingItems := m.dictionaries.Items()
	created := existing == nil
	m.form = newFormModel(title, fields, func(values map[string]string) tea.Cmd {
		d := base
		d.Name = values["name"]
		d.Type = catalog.DictionaryType(values["type"])
		d.Description = values["description"]
		d.ImagePath = values["image"]
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			item, err := app.Submitter.SubmitDictionary(ctx, app.Service, existingItems, d)
			return dictionarySavedMsg{item: item, created: created, err: err}
		}
	})
}

func (m *CatalogModel) openDepartmentForm(existing *catalog.Department) {
	draft := forms.NewDepartmentDraft(m.dictionaries.Items())
	title := "Add Department"
	if existing != nil {
		draft = forms.EditDepartmentDraft(*existing)
		title = "Edit Department"
	}

	fields := []formField{
		newTextField("name", "Name", draft.Name, "department name"),
		newSelectField("dictionary", "Dictionary", m.dictionaryOptions(), draft.Dictionary),
		newTextField("description", "Description", draft.Description, "optional"),
		newTextField("image", "Image file", draft.ImagePath, "optional path"),
	}

	app := m.app
	base := draft
	created := existing == nil
	m.form = newFormModel(title, fields, func(values map[string]string) tea.Cmd {
		d := base
		d.Name = values["name"]
		d.Dictionary = values["dictionary"]
		d.Description = values["description"]
		d.ImagePath = values["image"]
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			item, err := app.Submitter.SubmitDepartment(ctx, app.Service, d)
			return departmentSavedMsg{item: item, created: created, err: err}
		}
	})
}

func (m *CatalogModel) openCategoryForm(existing *catalog.Category) {
	draft := forms.NewCategoryDraft(m.dictionaries.Items())
	title := "Add Category"
	if existing != nil {
		draft = forms.EditCategoryDraft(*existing)
		title = "Edit Category"
	}

	fields := []formField{
		newTextField("name", "Name", draft.Name, "category name"),
		newSelectField("dictionary", "Dictionary", m.dictionaryOptions(), draft.Dictionary),
		newSelectField("department", "Department", m.departmentOptions(), draft.Department),
	}

	app := m.app
	base := draft
	created := existing == nil
	m.form = newFormModel(title, fields, func(values map[string]string) tea.Cmd {
		d := base
		d.Name = values["name"]
		d.Dictionary = values["dictionary"]
		d.Department = values["department"]
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			item, err := app.Submitter.SubmitCategory(ctx, app.Service, d)
			return categorySavedMsg{item: item, created: created, err: err}
		}
	})
}

func (m *CatalogModel) openWordForm(existing *catalog.Word) {
	draft := forms.NewWordDraft(m.dictionaries.Items())
	title := "Add Word"
	if existing != nil {
		draft = forms.EditWordDraft(*existing)
		title = "Edit Word"
	}

	fields := []formField{
		newTextField("name", "Name", draft.Name, "word"),
		newTextField("meaning", "Meaning", draft.Meaning, "meaning"),
		newSelectField("dictionary", "Dictionary", m.dictionaryOptions(), draft.Dictionary),
		newSelectField("department", "Department", m.departmentOptions(), draft.Department),
		newSelectField("category", "Category", m.categoryOptions(), draft.Category),
		newTextField("image", "Image file", draft.ImagePath, "optional path"),
	}

	app := m.app
	base := draft
	dictionaries := m.dictionaries.Items()
	created := existing == nil
	m.form = newFormModel(title, fields, func(values map[string]string) tea.Cmd {
		d := base
		d.Name = values["name"]
		d.Meaning = values["meaning"]
		d.Dictionary = values["dictionary"]
		d.Department = values["department"]
		d.Category = values["category"]
		d.ImagePath = values["image"]
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			item, err := app.Submitter.SubmitWord(ctx, app.Service, dictionaries, d)
			return wordSavedMsg{item: item, created: created, err: err}
		}
	})
}
