package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Layout.
const (
	defaultWidth  = 100
	defaultHeight = 30
	sidebarWidth  = 30

	// Right border of the sidebar and the spacer after it.
	sidebarGap = 2

	// Title, subtitle, tagline, blank, search box, blank.
	sidebarHeaderRows = 6
	// Page header and status line.
	chromeRows = 2
)

const helpText = "j/k 이동 · enter 선택 · / 검색 · y 복사 · q 종료"

func (m Model) View() string {
	sidebar := sidebarStyle.Height(max(1, m.height-1)).Render(m.renderSidebar())
	main := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatus())
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	inner := sidebarWidth - 2

	b.WriteString(titleStyle.Render(runewidth.Truncate(m.title, inner, "…")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(runewidth.Truncate(m.subtitle, inner, "…")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(runewidth.Truncate(m.tagline, inner, "…")))
	b.WriteString("\n\n")
	if m.searching {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render("/ 검색"))
	}
	b.WriteString("\n\n")

	active := m.session.Active()
	for i, id := range m.ids {
		marker := "  "
		if id == active {
			marker = "▸ "
		}
		label := fmt.Sprintf("%s%d. %s", marker, i+1, m.catalog.Label(id))
		label = runewidth.FillRight(runewidth.Truncate(label, inner, "…"), inner)

		style := itemStyle
		if id == active {
			style = activeStyle
		}
		if i == m.cursor && !m.searching {
			style = style.Inherit(cursorStyle)
		}
		b.WriteString(style.Render(label))
		if i < len(m.ids)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderHeader() string {
	return helpStyle.Render(runewidth.Truncate(helpText, m.viewport.Width, "…"))
}

func (m Model) renderStatus() string {
	if s := m.Status(); s != "" {
		return statusStyle.Render(s)
	}
	return ""
}

// renderContent formats the current page for a pane of the given width.
func (m Model) renderContent(width int) string {
	if m.pageErr != nil {
		return errorStyle.Render(wordwrap.String("페이지를 불러오지 못했습니다: "+m.pageErr.Error(), width))
	}
	if m.page == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.page.Title))
	b.WriteString("\n")
	if m.page.Subtitle != "" {
		b.WriteString(subtitleStyle.Render(wordwrap.String(m.page.Subtitle, width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range strings.Split(m.page.Content, "\n") {
		switch {
		case strings.HasPrefix(line, "#"):
			b.WriteString(headingStyle.Render(strings.TrimSpace(strings.TrimLeft(line, "#"))))
		case strings.HasPrefix(line, ">"):
			b.WriteString(quoteStyle.Render(wordwrap.String(line, width)))
		default:
			b.WriteString(wordwrap.String(line, width))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
