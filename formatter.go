package handbook

import "strings"

// FormatPage formats a page for terminal display or the clipboard.
// The subtitle, if any, is rendered as a quoted line under the title.
func FormatPage(p *Page) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(p.Title)
	b.WriteString("\n")
	if p.Subtitle != "" {
		b.WriteString("\n> ")
		b.WriteString(p.Subtitle)
		b.WriteString("\n")
	}
	if content := strings.TrimSpace(p.Content); content != "" {
		b.WriteString("\n")
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatOutline formats the headings of a page as an indented list.
// The shallowest level sits at the left margin.
func FormatOutline(p *Page) string {
	if p == nil || len(p.Headings) == 0 {
		return ""
	}

	top := p.Headings[0].Level
	for _, h := range p.Headings {
		top = min(top, h.Level)
	}

	lines := make([]string, 0, len(p.Headings))
	for _, h := range p.Headings {
		lines = append(lines, strings.Repeat("  ", h.Level-top)+"- "+h.Title)
	}
	return strings.Join(lines, "\n")
}
