package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authRedirectDelay keeps the success notice on screen briefly before
// navigating to the catalog.
const authRedirectDelay = time.Second

// LoginModel collects credentials and exchanges them for a session token.
type LoginModel struct {
	app          *App
	phone        textinput.Model
	password     textinput.Model
	focus        int
	registerMode bool
	busy         bool
	notice       notice
}

func newLoginModel(app *App) LoginModel {
	phone := textinput.New()
	phone.Placeholder = "+998901234567"
	phone.CharLimit = 32
	phone.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return LoginModel{app: app, phone: phone, password: password}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) submitCmd() tea.Cmd {
	app := m.app
	phone := strings.TrimSpace(m.phone.Value())
	password := m.password.Value()
	register := m.registerMode
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var token string
		var err error
		if register {
			token, err = app.Client.Register(ctx, phone, password)
		} else {
			token, err = app.Client.Login(ctx, phone, password)
		}
		return loginDoneMsg{token: token, err: err}
	}
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = notice{text: "authentication failed: " + msg.err.Error(), isError: true}
			return m, nil
		}
		if err := m.app.Session.Store(msg.token); err != nil {
			m.notice = notice{text: "could not store session: " + err.Error(), isError: true}
			return m, nil
		}
		m.notice = notice{text: "authenticated"}
		return m, tea.Tick(authRedirectDelay, func(time.Time) tea.Msg {
			return authenticatedMsg{}
		})

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			if m.focus == 0 {
				m.focus = 1
				m.phone.Blur()
				m.password.Focus()
			} else {
				m.focus = 0
				m.password.Blur()
				m.phone.Focus()
			}
			return m, nil
		case "ctrl+r":
			m.registerMode = !m.registerMode
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.focus = 1
				m.phone.Blur()
				m.password.Focus()
				return m, nil
			}
			if strings.TrimSpace(m.phone.Value()) == "" || m.password.Value() == "" {
				m.notice = notice{text: "phone and password are required", isError: true}
				return m, nil
			}
			m.busy = true
			m.notice = notice{}
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.phone, cmd = m.phone.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")

	mode := "Sign in"
	if m.registerMode {
		mode = "Register"
	}
	b.WriteString(focusedLabelStyle.Render(mode))
	b.WriteString("\n\n")

	b.WriteString(fieldLabelStyle.Render("Phone"))
	b.WriteString("\n")
	b.WriteString(m.phone.View())
	b.WriteString("\n")
	b.WriteString(fieldLabelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(helpStyle.Render("authenticating..."))
		b.WriteString("\n")
	}
	if m.notice.text != "" {
		b.WriteString(m.notice.render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit • ctrl+r: toggle register • ctrl+c: quit"))
	return formBoxStyle.Render(b.String())
}
