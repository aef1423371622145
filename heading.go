package handbook

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is an ATX heading of a page's Markdown content.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractHeadings returns the headings of markdown in document order.
// Lines inside fenced code blocks are skipped. Repeated anchors get a
// numeric suffix, so every anchor on a page is unique.
func ExtractHeadings(markdown string) []Heading {
	var (
		headings []Heading
		fence    string
		seen     = make(map[string]int)
	)

	for _, line := range strings.Split(markdown, "\n") {
		if fence != "" {
			if strings.HasPrefix(strings.TrimSpace(line), fence) {
				fence = ""
			}
			continue
		}
		if f := fenceMarker(line); f != "" {
			fence = f
			continue
		}

		level, title, ok := parseHeading(line)
		if !ok {
			continue
		}

		anchor := headingAnchor(title)
		if n := seen[anchor]; n > 0 {
			seen[anchor]++
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}

		headings = append(headings, Heading{Level: level, Title: title, Anchor: anchor})
	}

	return headings
}

func fenceMarker(line string) string {
	s := strings.TrimSpace(line)
	for _, f := range []string{"```", "~~~"} {
		if strings.HasPrefix(s, f) {
			return f
		}
	}
	return ""
}

// parseHeading recognizes "#"-prefixed headings of level 1 to 6. A closing
// run of "#" is dropped from the title.
func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) {
		return 0, "", false
	}
	if line[level] != ' ' && line[level] != '\t' {
		return 0, "", false
	}

	title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[level:]), "#"))
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

// headingAnchor lower-cases title and keeps letters and digits, joining
// words with single hyphens. Hangul counts as letters.
func headingAnchor(title string) string {
	var b strings.Builder
	gap := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			gap = false
		case unicode.IsSpace(r) || r == '-':
			gap = true
		}
	}

	return b.String()
}
