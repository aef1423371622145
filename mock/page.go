package mock

import (
	"context"

	"github.com/fwojciec/handbook"
)

// Compile-time interface verification.
var (
	_ handbook.PageService   = (*PageService)(nil)
	_ handbook.ContentSource = (*ContentSource)(nil)
	_ handbook.PageParser    = (*PageParser)(nil)
	_ handbook.PageStore     = (*PageStore)(nil)
)

// PageService is a mock implementation of handbook.PageService.
type PageService struct {
	FindPageFn func(ctx context.Context, id handbook.SectionID) (*handbook.Page, error)
}

func (s *PageService) FindPage(ctx context.Context, id handbook.SectionID) (*handbook.Page, error) {
	return s.FindPageFn(ctx, id)
}

// ContentSource is a mock implementation of handbook.ContentSource.
type ContentSource struct {
	SectionHTMLFn func(id handbook.SectionID) (string, error)
}

func (s *ContentSource) SectionHTML(id handbook.SectionID) (string, error) {
	return s.SectionHTMLFn(id)
}

// PageParser is a mock implementation of handbook.PageParser.
type PageParser struct {
	ParseFn func(html string) (*handbook.PageFragment, error)
}

func (p *PageParser) Parse(html string) (*handbook.PageFragment, error) {
	return p.ParseFn(html)
}

// PageStore is a mock implementation of handbook.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, position int, page *handbook.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, position int, page *handbook.Page) error {
	return s.SaveFn(ctx, position, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
