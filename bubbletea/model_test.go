package bubbletea_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/bubbletea"
	"github.com/fwojciec/handbook/guide"
	"github.com/fwojciec/handbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	session *handbook.Session
	loaded  []handbook.SectionID
	copied  []string
	now     time.Time
}

func testCatalog(t *testing.T) *handbook.Catalog {
	t.Helper()
	c, err := handbook.NewCatalog([]handbook.Section{
		{ID: handbook.SectionOverview, Label: "업무 개요", Keywords: []string{"개요", "흐름"}},
		{ID: handbook.SectionIncome, Label: "수입 업무 튜토리얼", Keywords: []string{"수입", "계좌거래"}},
		{ID: handbook.SectionChecklist, Label: "체크리스트", Keywords: []string{"점검"}},
	})
	require.NoError(t, err)
	return c
}

func newModel(t *testing.T, mouse bool) (bubbletea.Model, *harness) {
	t.Helper()
	c := testCatalog(t)
	h := &harness{session: handbook.NewSession(handbook.SectionOverview), now: epoch}

	pages := &mock.PageService{
		FindPageFn: func(_ context.Context, id handbook.SectionID) (*handbook.Page, error) {
			h.loaded = append(h.loaded, id)
			return &handbook.Page{ID: id, Title: c.Label(id), Content: "본문"}, nil
		},
	}

	m := bubbletea.New(context.Background(), bubbletea.Config{
		Navigator: handbook.NewController(c),
		Catalog:   c,
		Pages:     pages,
		Session:   h.session,
		Title:     "바이오코어 사업단",
		Subtitle:  "수입·지출 업무 튜토리얼",
		Tagline:   "인계인수서 기반 가이드",
		Mouse:     mouse,
		Clipboard: func(text string) error {
			h.copied = append(h.copied, text)
			return nil
		},
		Now: func() time.Time { return h.now },
	})
	return m, h
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m bubbletea.Model, msgs ...tea.Msg) (bubbletea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(bubbletea.Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m bubbletea.Model, text string) bubbletea.Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, runes(string(r)))
	}
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("shows the active section of the session", func(t *testing.T) {
		t.Parallel()

		m, h := newModel(t, false)

		assert.Equal(t, handbook.SectionOverview, m.Active())
		assert.Equal(t, handbook.SectionOverview, m.Cursor())
		assert.Equal(t, []handbook.SectionID{handbook.SectionOverview}, h.loaded)
		assert.False(t, m.Searching())
		assert.Nil(t, m.Init())
	})

	t.Run("places the cursor on a non-first landing section", func(t *testing.T) {
		t.Parallel()

		c := testCatalog(t)
		m := bubbletea.New(context.Background(), bubbletea.Config{
			Navigator: handbook.NewController(c),
			Catalog:   c,
			Pages: &mock.PageService{
				FindPageFn: func(_ context.Context, id handbook.SectionID) (*handbook.Page, error) {
					return &handbook.Page{ID: id, Title: "t"}, nil
				},
			},
			Session: handbook.NewSession(handbook.SectionChecklist),
		})

		assert.Equal(t, handbook.SectionChecklist, m.Cursor())
	})

	t.Run("renders load errors instead of failing", func(t *testing.T) {
		t.Parallel()

		c := testCatalog(t)
		m := bubbletea.New(context.Background(), bubbletea.Config{
			Navigator: handbook.NewController(c),
			Catalog:   c,
			Pages: &mock.PageService{
				FindPageFn: func(context.Context, handbook.SectionID) (*handbook.Page, error) {
					return nil, errors.New("boom")
				},
			},
			Session: handbook.NewSession(handbook.SectionOverview),
		})

		assert.Contains(t, m.View(), "boom")
	})
}

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("lists every section with its number", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t, false)
		m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
		view := m.View()

		assert.Contains(t, view, "바이오코어 사업단")
		assert.Contains(t, view, "인계인수서 기반 가이드")
		assert.Contains(t, view, "1. 업무 개요")
		assert.Contains(t, view, "2. 수입 업무 튜토리얼")
		assert.Contains(t, view, "3. 체크리스트")
		assert.Contains(t, view, "본문")
	})

	t.Run("no line is wider than the terminal", func(t *testing.T) {
		t.Parallel()

		c := guide.DefaultCatalog()
		long := strings.Repeat("사업비 입금 내역을 e-Branch에서 조회합니다. ", 20)
		m := bubbletea.New(context.Background(), bubbletea.Config{
			Navigator: handbook.NewController(c),
			Catalog:   c,
			Pages: &mock.PageService{
				FindPageFn: func(_ context.Context, id handbook.SectionID) (*handbook.Page, error) {
					return &handbook.Page{ID: id, Title: c.Label(id), Subtitle: long, Content: "## 단계\n\n" + long}, nil
				},
			},
			Session:  handbook.NewSession(guide.DefaultLanding),
			Title:    guide.Title,
			Subtitle: guide.Subtitle,
			Tagline:  guide.Tagline,
		})

		for _, size := range []tea.WindowSizeMsg{{Width: 80, Height: 24}, {Width: 120, Height: 40}} {
			m, _ = send(t, m, size)
			lines := strings.Split(m.View(), "\n")
			assert.LessOrEqual(t, len(lines), size.Height)
			for i, line := range lines {
				assert.LessOrEqual(t, lipgloss.Width(line), size.Width, "line %d at width %d", i, size.Width)
			}
		}
	})
}
