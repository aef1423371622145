// Package render assembles section pages from raw content.
package render

import (
	"context"
	"fmt"

	"github.com/fwojciec/handbook"
)

// Ensure PageService implements handbook.PageService at compile time.
var _ handbook.PageService = (*PageService)(nil)

// PageService builds a page by loading the section fragment, splitting it
// into subtitle and body, and converting the body to Markdown. The page
// title is always the catalog label.
type PageService struct {
	Catalog   *handbook.Catalog
	Source    handbook.ContentSource
	Parser    handbook.PageParser
	Converter handbook.Converter
}

// FindPage returns the page for id.
// Returns ENOTFOUND if id is not in the catalog or has no content.
func (s *PageService) FindPage(ctx context.Context, id handbook.SectionID) (*handbook.Page, error) {
	if !s.Catalog.Has(id) {
		return nil, handbook.Errorf(handbook.ENOTFOUND, "section %s is not in the catalog", id)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := s.Source.SectionHTML(id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}

	frag, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", id, err)
	}

	markdown, err := s.Converter.Convert(frag.BodyHTML)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", id, err)
	}

	page := &handbook.Page{
		ID:       id,
		Title:    s.Catalog.Label(id),
		Subtitle: frag.Subtitle,
		Content:  markdown,
		Headings: handbook.ExtractHeadings(markdown),
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
