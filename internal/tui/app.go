// Package tui implements the interactive dashboard for the dictionary
// catalog. The application is a bubbletea program with two screens: a
// login gate and the catalog browser. All list state lives on the event
// loop; commands only fetch and report back with typed messages.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/uzdict/dictadmin/internal/api"
	"github.com/uzdict/dictadmin/internal/catalog"
	"github.com/uzdict/dictadmin/internal/forms"
	"github.com/uzdict/dictadmin/internal/session"
)

// App bundles the dependencies the dashboard needs.
type App struct {
	Session   *session.Session
	Client    *api.Client
	Service   *catalog.Service
	Submitter *forms.Submitter
	PageSize  int
}

// AppModel routes between the login and catalog screens.
type AppModel struct {
	app     *App
	screen  Screen
	login   LoginModel
	catalog CatalogModel
	width   int
	height  int
}

func NewAppModel(app *App) AppModel {
	m := AppModel{
		app:     app,
		screen:  ScreenLogin,
		login:   newLoginModel(app),
		catalog: newCatalogModel(app),
	}
	if app.Session.Authenticated() {
		m.screen = ScreenCatalog
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.screen == ScreenCatalog {
		return m.catalog.Init()
	}
	return m.login.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var loginCmd, catalogCmd tea.Cmd
		m.login, loginCmd = m.login.Update(msg)
		m.catalog, catalogCmd = m.catalog.Update(msg)
		return m, tea.Batch(loginCmd, catalogCmd)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case authenticatedMsg:
		m.screen = ScreenCatalog
		m.catalog = newCatalogModel(m.app)
		m.catalog.width = m.width
		m.catalog.height = m.height
		return m, m.catalog.Init()

	case logoutRequestMsg:
		// Logout is a hard reset: clear the stored token and rebuild
		// both screens so no catalog state leaks into the next session.
		_ = m.app.Session.Clear()
		m.screen = ScreenLogin
		m.login = newLoginModel(m.app)
		m.catalog = newCatalogModel(m.app)
		return m, m.login.Init()
	}

	// The catalog screen is unreachable without a session token.
	if m.screen == ScreenCatalog && !m.app.Session.Authenticated() {
		m.screen = ScreenLogin
		m.login = newLoginModel(m.app)
		m.catalog = newCatalogModel(m.app)
		return m, m.login.Init()
	}

	var cmd tea.Cmd
	switch m.screen {
	case ScreenCatalog:
		m.catalog, cmd = m.catalog.Update(msg)
	default:
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if m.screen == ScreenCatalog {
		return m.catalog.View()
	}
	return m.login.View()
}

// Run starts the dashboard and blocks until it exits.
func Run(app *App) error {
	program := tea.NewProgram(NewAppModel(app), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program.Run > %w", err)
	}
	return nil
}
