package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/listctl"
)

const maxCellWidth = 28

func truncate(s string, width int) string {
	if s == "" {
		return placeholderDash
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func renderTable(headers []string, rows [][]string, selected int) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	renderRow := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], truncate(cell, widths[i]))
		}
		return strings.Join(parts, "  ")
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(renderRow(headers)))
	b.WriteString("\n")
	for i, row := range rows {
		line := renderRow(row)
		if i == selected {
			line = selectedRowStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(helpStyle.Render("  (no entries)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m CatalogModel) kindTabs() string {
	var tabs []string
	for _, k := range []entityKind{kindDictionaries, kindDepartments, kindCategories, kindWords} {
		label := fmt.Sprintf("%d:%s", int(k)+1, k.label())
		if k == m.kind {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m CatalogModel) typeTabs() string {
	var tabs []string
	for _, t := range catalog.AllDictionaryTypes {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(string(t)))
		} else {
			tabs = append(tabs, tabStyle.Render(string(t)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m CatalogModel) tableView() string {
	switch m.kind {
	case kindDictionaries:
		items := m.visibleDictionaries()
		rows := make([][]string, 0, len(items))
		for i, d := range items {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				d.Name,
				string(d.Type),
				d.Description,
				imageMark(d.ImageURL),
			})
		}
		return renderTable([]string{"#", "Name", "Type", "Description", "Image"}, rows, m.cursor)

	case kindDepartments:
		items := m.departments.Window()
		offset := (m.departments.Page() - 1) * m.departments.PageSize()
		rows := make([][]string, 0, len(items))
		for i, d := range items {
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset+i+1),
				d.Name,
				m.dictionaryName(d.Dictionary),
				d.Description,
			})
		}
		return renderTable([]string{"#", "Name", "Dictionary", "Description"}, rows, m.cursor)

	case kindCategories:
		items := m.categories.Window()
		offset := (m.categories.Page() - 1) * m.categories.PageSize()
		rows := make([][]string, 0, len(items))
		for i, c := range items {
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset+i+1),
				c.Name,
				m.departmentName(c.Department),
				m.dictionaryName(c.Dictionary),
			})
		}
		return renderTable([]string{"#", "Name", "Department", "Dictionary"}, rows, m.cursor)

	default:
		items := m.words.Window()
		offset := (m.words.Page() - 1) * m.words.PageSize()
		rows := make([][]string, 0, len(items))
		for i, w := range items {
			rows = append(rows, []string{
				fmt.Sprintf("%d", offset+i+1),
				w.Name,
				w.Meaning,
				m.categoryName(w.Category),
				m.departmentName(w.Department),
				m.dictionaryName(w.Dictionary),
			})
		}
		return renderTable([]string{"#", "Name", "Meaning", "Category", "Department", "Dictionary"}, rows, m.cursor)
	}
}

func imageMark(url string) string {
	if url == "" {
		return placeholderDash
	}
	return "✓"
}

func (m CatalogModel) pageLine() string {
	var page, total int
	switch m.kind {
	case kindDictionaries:
		return ""
	case kindDepartments:
		page, total = m.departments.Page(), m.departments.TotalPages()
	case kindCategories:
		page, total = m.categories.Page(), m.categories.TotalPages()
	default:
		page, total = m.words.Page(), m.words.TotalPages()
	}
	return helpStyle.Render(fmt.Sprintf("page %d/%d", page, total))
}

func (m CatalogModel) statusLine() string {
	var parts []string
	sortLabel := "created"
	if m.currentSort() == listctl.SortByName {
		sortLabel = "name"
	}
	parts = append(parts, "sort: "+sortLabel)
	if term := m.currentSearchTerm(); term != "" {
		parts = append(parts, fmt.Sprintf("search: %q", term))
	}
	if m.pending > 0 {
		parts = append(parts, "loading...")
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func (m CatalogModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("  ")
	b.WriteString(m.kindTabs())
	b.WriteString("\n")

	if m.kind == kindDictionaries {
		b.WriteString(m.typeTabs())
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("search: ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.tableView())
	b.WriteString("\n")

	if line := m.pageLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirmID != "" {
		b.WriteString(errorNoticeStyle.Render(fmt.Sprintf("delete %q? (y/n)", m.confirmName)))
		b.WriteString("\n")
	}
	if m.deleting {
		b.WriteString(helpStyle.Render("deleting..."))
		b.WriteString("\n")
	}
	if m.notice.text != "" {
		b.WriteString(m.notice.render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"1-4: section • t: type • /: search • s: sort • ←/→: page • a: add • e: edit • d: delete • r: reload • L: logout • q: quit"))

	content := b.String()
	if m.form != nil {
		return centerOverlay(m.width, m.height, m.form.View())
	}
	return content
}
