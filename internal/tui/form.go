package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
)

type selectOption struct {
	id    string
	label string
}

type formField struct {
	name     string
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []selectOption
	selected int
}

func newTextField(name, label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.SetValue(value)
	return formField{name: name, label: label, kind: fieldText, input: ti}
}

func newSelectField(name, label string, options []selectOption, selectedID string) formField {
	f := formField{name: name, label: label, kind: fieldSelect, options: options}
	for i, opt := range options {
		if opt.id == selectedID {
			f.selected = i
			break
		}
	}
	return f
}

func (f formField) value() string {
	if f.kind == fieldSelect {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.selected].id
	}
	return f.input.Value()
}

// FormModel is a modal entity editor rendered over the catalog screen.
type FormModel struct {
	title   string
	fields  []formField
	focus   int
	busy    bool
	errText string
	submit  func(values map[string]string) tea.Cmd
}

func newFormModel(title string, fields []formField, submit func(map[string]string) tea.Cmd) *FormModel {
	m := &FormModel{title: title, fields: fields, submit: submit}
	if len(m.fields) > 0 && m.fields[0].kind == fieldText {
		m.fields[0].input.Focus()
	}
	return m
}

func (m *FormModel) values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.name] = f.value()
	}
	return values
}

func (m *FormModel) setFocus(focus int) {
	if focus < 0 {
		focus = len(m.fields) - 1
	}
	if focus >= len(m.fields) {
		focus = 0
	}
	for i := range m.fields {
		if m.fields[i].kind != fieldText {
			continue
		}
		if i == focus {
			m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
	m.focus = focus
}

// Update handles form input. It returns a command and whether the form
// should close.
func (m *FormModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	// A submission is running; ignore input so the form cannot be
	// re-submitted or abandoned mid-flight.
	if m.busy {
		return nil, false
	}

	switch keyMsg.String() {
	case "esc":
		return nil, true
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return nil, false
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return nil, false
	case "left", "right":
		f := &m.fields[m.focus]
		if f.kind == fieldSelect && len(f.options) > 0 {
			if keyMsg.String() == "right" {
				f.selected = (f.selected + 1) % len(f.options)
			} else {
				f.selected = (f.selected - 1 + len(f.options)) % len(f.options)
			}
			return nil, false
		}
	case "enter", "ctrl+s":
		if keyMsg.String() == "enter" && m.focus < len(m.fields)-1 {
			m.setFocus(m.focus + 1)
			return nil, false
		}
		m.busy = true
		m.errText = ""
		return m.submit(m.values()), false
	}

	if m.fields[m.focus].kind == fieldText {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return cmd, false
	}
	return nil, false
}

// fail re-enables the form after a rejected submission.
func (m *FormModel) fail(err error) {
	m.busy = false
	m.errText = err.Error()
}

func (m *FormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := fieldLabelStyle.Render(f.label)
		if i == m.focus {
			label = focusedLabelStyle.Render(f.label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		if f.kind == fieldSelect {
			value := placeholderDash
			if len(f.options) > 0 {
				value = f.options[f.selected].label
			}
			marker := "  "
			if i == m.focus {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s◀ %s ▶\n", marker, value))
		} else {
			b.WriteString(f.input.View())
			b.WriteString("\n")
		}
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorNoticeStyle.Render(m.errText))
		b.WriteString("\n")
	}

	footer := "enter: next/save • ctrl+s: save • esc: cancel"
	if m.busy {
		footer = "saving..."
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(footer))

	return formBoxStyle.Render(b.String())
}

func centerOverlay(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
