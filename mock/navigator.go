package mock

import "github.com/fwojciec/handbook"

var _ handbook.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of handbook.Navigator.
type Navigator struct {
	SetActiveFn          func(s *handbook.Session, id handbook.SectionID)
	ResolveAndActivateFn func(s *handbook.Session, query string) (handbook.SectionID, bool)
}

func (n *Navigator) SetActive(s *handbook.Session, id handbook.SectionID) {
	n.SetActiveFn(s, id)
}

func (n *Navigator) ResolveAndActivate(s *handbook.Session, query string) (handbook.SectionID, bool) {
	return n.ResolveAndActivateFn(s, query)
}
