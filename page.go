package handbook

import "context"

// Page is the rendered content of one section.
type Page struct {
	ID       SectionID `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Content  string    `json:"content"` // Markdown
	Headings []Heading `json:"headings"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if !p.ID.Valid() {
		return Errorf(EINVALID, "page section id required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "page %s: title required", p.ID)
	}
	return nil
}

// PageService provides the rendered page of a section.
type PageService interface {
	// FindPage returns the page for id.
	// Returns ENOTFOUND if the section has no content.
	FindPage(ctx context.Context, id SectionID) (*Page, error)
}

// ContentSource provides the raw HTML fragment of a section.
type ContentSource interface {
	// SectionHTML returns the HTML fragment for id.
	// Returns ENOTFOUND if the section has no content.
	SectionHTML(id SectionID) (string, error)
}

// PageFragment is a section HTML fragment split into its parts.
type PageFragment struct {
	Subtitle string
	BodyHTML string
}

// PageParser splits a section HTML fragment into subtitle and body.
type PageParser interface {
	Parse(html string) (*PageFragment, error)
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, position int, page *Page) error
	Commit() error
	Abort() error
}
