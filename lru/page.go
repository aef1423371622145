// Package lru caches rendered pages in memory.
package lru

import (
	"context"

	"github.com/fwojciec/handbook"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize holds every built-in section with room to spare.
const DefaultSize = 16

// Ensure PageService implements handbook.PageService at compile time.
var _ handbook.PageService = (*PageService)(nil)

// PageService wraps a PageService and keeps the most recently used pages.
// Failed lookups are not cached. It is safe for concurrent use.
type PageService struct {
	next  handbook.PageService
	cache *lru.Cache[handbook.SectionID, *handbook.Page]
}

// NewPageService returns a PageService caching up to size pages from next.
// A size of zero or less uses DefaultSize.
func NewPageService(next handbook.PageService, size int) (*PageService, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[handbook.SectionID, *handbook.Page](size)
	if err != nil {
		return nil, handbook.Errorf(handbook.EINTERNAL, "create page cache: %v", err)
	}
	return &PageService{next: next, cache: cache}, nil
}

// FindPage returns the cached page for id, rendering it on a miss.
func (s *PageService) FindPage(ctx context.Context, id handbook.SectionID) (*handbook.Page, error) {
	if page, ok := s.cache.Get(id); ok {
		return page, nil
	}
	page, err := s.next.FindPage(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, page)
	return page, nil
}

// Len returns the number of cached pages.
func (s *PageService) Len() int {
	return s.cache.Len()
}

// Purge drops every cached page.
func (s *PageService) Purge() {
	s.cache.Purge()
}
