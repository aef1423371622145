package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/handbook"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case statusExpiredMsg:
		if msg.at.Equal(m.statusAt) {
			m.clearStatus()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.ids) - 1
	case "enter":
		m.activate(m.ids[m.cursor])
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if n := int(key[0] - '1'); n < len(m.ids) {
			m.activate(m.ids[n])
		}
	case "/":
		m.searching = true
		cmd := m.input.Focus()
		return m, cmd
	case "y":
		cmd := m.copyPage()
		return m, cmd
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.search(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search resolves query through the navigator. A hit closes the search box
// and shows the section; a miss keeps the view and reports the query.
func (m Model) search(query string) (tea.Model, tea.Cmd) {
	id, ok := m.nav.ResolveAndActivate(m.session, query)
	if !ok {
		if strings.TrimSpace(query) == "" {
			return m, nil
		}
		cmd := m.setStatus(statusNoMatch + strings.TrimSpace(query))
		return m, cmd
	}

	m.searching = false
	m.input.Blur()
	m.cursor = m.catalog.Position(id)
	m.loadPage()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= sidebarWidth {
		return m, nil
	}
	if row := msg.Y - sidebarHeaderRows; row >= 0 && row < len(m.ids) {
		m.activate(m.ids[row])
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor = max(0, min(len(m.ids)-1, m.cursor+delta))
}

// activate makes id the active section and moves the cursor onto it.
func (m *Model) activate(id handbook.SectionID) {
	m.nav.SetActive(m.session, id)
	m.cursor = m.catalog.Position(id)
	m.loadPage()
}

func (m *Model) copyPage() tea.Cmd {
	if m.page == nil {
		return nil
	}
	if err := m.clipboard(handbook.FormatPage(m.page)); err != nil {
		return m.setStatus("복사 실패: " + err.Error())
	}
	return m.setStatus(statusCopied)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = max(1, width-sidebarWidth-sidebarGap)
	m.viewport.Height = max(1, height-chromeRows)
	m.input.Width = sidebarWidth - 4
	m.refreshContent()
}
