// Package bubbletea implements the interactive handbook browser: a section
// sidebar with a search box next to a scrollable page view.
package bubbletea

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/handbook"
)

// DefaultStatusTTL is how long a status message stays visible.
const DefaultStatusTTL = 4 * time.Second

// Status messages.
const (
	statusNoMatch = "검색 결과 없음: "
	statusCopied  = "클립보드에 복사했습니다"
)

// Config holds the dependencies and settings of a Model.
type Config struct {
	Navigator handbook.Navigator
	Catalog   *handbook.Catalog
	Pages     handbook.PageService
	Session   *handbook.Session

	// Sidebar header lines and search placeholder.
	Title       string
	Subtitle    string
	Tagline     string
	Placeholder string

	StatusTTL time.Duration
	Mouse     bool

	// Clipboard defaults to the system clipboard.
	Clipboard func(text string) error
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model of the browser. The session it is given is
// owned by the model for its lifetime.
type Model struct {
	ctx     context.Context
	nav     handbook.Navigator
	catalog *handbook.Catalog
	pages   handbook.PageService
	session *handbook.Session

	title    string
	subtitle string
	tagline  string

	ids       []handbook.SectionID
	cursor    int
	searching bool
	input     textinput.Model
	viewport  viewport.Model

	page    *handbook.Page
	pageErr error

	status    string
	statusAt  time.Time
	statusTTL time.Duration

	mouse     bool
	clipboard func(string) error
	now       func() time.Time

	width  int
	height int
}

type statusExpiredMsg struct {
	at time.Time
}

// New returns a Model showing the active section of cfg.Session.
func New(ctx context.Context, cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 100

	m := Model{
		ctx:       ctx,
		nav:       cfg.Navigator,
		catalog:   cfg.Catalog,
		pages:     cfg.Pages,
		session:   cfg.Session,
		title:     cfg.Title,
		subtitle:  cfg.Subtitle,
		tagline:   cfg.Tagline,
		ids:       cfg.Catalog.IDs(),
		input:     ti,
		viewport:  viewport.New(defaultWidth-sidebarWidth-sidebarGap, defaultHeight-chromeRows),
		statusTTL: cfg.StatusTTL,
		mouse:     cfg.Mouse,
		clipboard: cfg.Clipboard,
		now:       cfg.Now,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if m.statusTTL <= 0 {
		m.statusTTL = DefaultStatusTTL
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.now == nil {
		m.now = time.Now
	}

	m.cursor = m.catalog.Position(m.session.Active())
	m.loadPage()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the section currently shown.
func (m Model) Active() handbook.SectionID {
	return m.session.Active()
}

// Cursor returns the section under the sidebar cursor.
func (m Model) Cursor() handbook.SectionID {
	return m.ids[m.cursor]
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Status returns the visible status message, if any.
func (m Model) Status() string {
	return m.statusMessage(m.now())
}

// loadPage renders the active section into the viewport.
func (m *Model) loadPage() {
	page, err := m.pages.FindPage(m.ctx, m.session.Active())
	m.page, m.pageErr = page, err
	m.refreshContent()
	m.viewport.GotoTop()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderContent(m.viewport.Width))
}

func (m *Model) setStatus(msg string) tea.Cmd {
	at := m.now()
	m.status = msg
	m.statusAt = at
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{at: at}
	})
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusAt = time.Time{}
}

func (m Model) statusMessage(now time.Time) string {
	if m.status == "" {
		return ""
	}
	if now.Sub(m.statusAt) > m.statusTTL {
		return ""
	}
	return m.status
}
