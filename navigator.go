package handbook

// Session holds the navigation state of one viewer. Each TUI program or CLI
// invocation owns its own Session; sessions are never shared.
type Session struct {
	active SectionID
}

// NewSession returns a Session positioned on the landing section.
func NewSession(landing SectionID) *Session {
	return &Session{active: landing}
}

// Active returns the section currently presented to the viewer.
func (s *Session) Active() SectionID {
	return s.active
}

// Navigator changes the active section of a session.
type Navigator interface {
	// SetActive makes id the active section of s.
	SetActive(s *Session, id SectionID)

	// ResolveAndActivate resolves query against the catalog and, on a hit,
	// makes the result the active section of s. On a miss s is untouched
	// and false is returned; a miss is not an error.
	ResolveAndActivate(s *Session, query string) (SectionID, bool)
}

// Ensure Controller implements Navigator at compile time.
var _ Navigator = (*Controller)(nil)

// Controller implements Navigator over a Catalog.
type Controller struct {
	catalog *Catalog
}

// NewController returns a Controller resolving queries against c.
func NewController(c *Catalog) *Controller {
	return &Controller{catalog: c}
}

// Catalog returns the catalog the controller resolves against.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// SetActive makes id the active section of s. It panics if id is not a
// catalog member.
func (c *Controller) SetActive(s *Session, id SectionID) {
	c.catalog.lookup(id)
	s.active = id
}

// ResolveAndActivate implements Navigator.
func (c *Controller) ResolveAndActivate(s *Session, query string) (SectionID, bool) {
	m, ok := c.Resolve(query)
	if !ok {
		return 0, false
	}
	c.SetActive(s, m.ID)
	return m.ID, true
}

// Resolve resolves query without touching any session.
func (c *Controller) Resolve(query string) (Match, bool) {
	return Resolve(c.catalog, query)
}
