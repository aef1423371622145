package handbook

import (
	"fmt"
	"slices"
)

// Catalog is the immutable registry of navigable sections. Its members are
// a configured subset of the SectionID constants, each present exactly
// once, and iteration follows the order the sections were supplied to
// NewCatalog. That order decides ties during resolution.
type Catalog struct {
	order    []SectionID
	sections map[SectionID]Section
}

// NewCatalog validates sections and returns a Catalog holding copies of
// them. Returns EINVALID if sections is empty, a section is invalid, an id
// repeats, or a label repeats.
func NewCatalog(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, Errorf(EINVALID, "catalog requires at least one section")
	}

	c := &Catalog{
		order:    make([]SectionID, 0, len(sections)),
		sections: make(map[SectionID]Section, len(sections)),
	}
	labels := make(map[string]SectionID, len(sections))

	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.sections[s.ID]; ok {
			return nil, Errorf(EINVALID, "section %s declared more than once", s.ID)
		}
		if other, ok := labels[s.Label]; ok {
			return nil, Errorf(EINVALID, "sections %s and %s share label %q", other, s.ID, s.Label)
		}
		labels[s.Label] = s.ID

		s.Keywords = slices.Clone(s.Keywords)
		c.order = append(c.order, s.ID)
		c.sections[s.ID] = s
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is intended for
// catalogs declared in code.
func MustCatalog(sections []Section) *Catalog {
	c, err := NewCatalog(sections)
	if err != nil {
		panic(err)
	}
	return c
}

// IDs returns the section ids in declaration order.
func (c *Catalog) IDs() []SectionID {
	return slices.Clone(c.order)
}

// Has reports whether id is a member of the catalog.
func (c *Catalog) Has(id SectionID) bool {
	_, ok := c.sections[id]
	return ok
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Section returns a copy of the descriptor for id.
func (c *Catalog) Section(id SectionID) Section {
	s := c.lookup(id)
	s.Keywords = slices.Clone(s.Keywords)
	return s
}

// Label returns the display label of id.
func (c *Catalog) Label(id SectionID) string {
	return c.lookup(id).Label
}

// Keywords returns the search keywords of id.
func (c *Catalog) Keywords(id SectionID) []string {
	return slices.Clone(c.lookup(id).Keywords)
}

// Position returns the zero-based declaration index of id.
func (c *Catalog) Position(id SectionID) int {
	c.lookup(id)
	return slices.Index(c.order, id)
}

// lookup panics for ids outside the catalog. Callers obtain ids from IDs or
// check them with Has at the configuration boundary.
func (c *Catalog) lookup(id SectionID) Section {
	s, ok := c.sections[id]
	if !ok {
		panic(fmt.Sprintf("handbook: %s is not a catalog section", id))
	}
	return s
}
