package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/handbook"
)

// Ensure Parser implements handbook.PageParser at compile time.
var _ handbook.PageParser = (*Parser)(nil)

// Selectors used to locate the parts of a section fragment.
const (
	headerSelector   = "header"
	subtitleSelector = "header .subtitle"
)

// Parser splits section fragments of the form
//
//	<header><p class="subtitle">...</p></header>
//	<section>...</section>
//
// into a subtitle and the body HTML that follows the header.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the subtitle and body from a section fragment.
// The header is optional; a fragment without one yields an empty subtitle.
// Returns EINVALID if the fragment cannot be parsed or has no body.
func (p *Parser) Parse(html string) (*handbook.PageFragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, handbook.Errorf(handbook.EINVALID, "failed to parse HTML: %v", err)
	}

	subtitle := collapseSpace(doc.Find(subtitleSelector).First().Text())
	doc.Find(headerSelector).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, handbook.Errorf(handbook.EINVALID, "failed to render body: %v", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, handbook.Errorf(handbook.EINVALID, "section fragment has no body")
	}

	return &handbook.PageFragment{
		Subtitle: subtitle,
		BodyHTML: body,
	}, nil
}

// collapseSpace joins the whitespace-separated fields of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
