package handbook

import "fmt"

// SectionID identifies one navigable section of the guide. The set of
// members is closed: every value other than the constants below is invalid,
// and text only becomes a SectionID through ParseSectionID.
type SectionID uint8

// SectionID constants in declaration order. The zero value is invalid.
const (
	SectionDashboard SectionID = iota + 1
	SectionOverview
	SectionIncome
	SectionReallocation
	SectionExpense
	SectionSystems
	SectionChecklist
	SectionContacts
	SectionSecurity
)

// sectionNames is indexed by SectionID.
var sectionNames = [...]string{
	SectionDashboard:    "dashboard",
	SectionOverview:     "overview",
	SectionIncome:       "income",
	SectionReallocation: "reallocation",
	SectionExpense:      "expense",
	SectionSystems:      "systems",
	SectionChecklist:    "checklist",
	SectionContacts:     "contacts",
	SectionSecurity:     "security",
}

// AllSectionIDs returns every member of the closed set in declaration order.
func AllSectionIDs() []SectionID {
	ids := make([]SectionID, 0, len(sectionNames)-1)
	for id := SectionDashboard; int(id) < len(sectionNames); id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is a member of the closed set.
func (id SectionID) Valid() bool {
	return id >= SectionDashboard && int(id) < len(sectionNames)
}

// String returns the symbolic name of the section, e.g. "income".
func (id SectionID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("SectionID(%d)", uint8(id))
	}
	return sectionNames[id]
}

// ParseSectionID returns the SectionID with the given symbolic name.
// Returns EINVALID if the name is not a member of the closed set.
func ParseSectionID(name string) (SectionID, error) {
	for _, id := range AllSectionIDs() {
		if sectionNames[id] == name {
			return id, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown section %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (id SectionID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, Errorf(EINVALID, "invalid section id %d", uint8(id))
	}
	return []byte(sectionNames[id]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *SectionID) UnmarshalText(text []byte) error {
	parsed, err := ParseSectionID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Section describes one entry of the catalog.
type Section struct {
	ID       SectionID `json:"id"`
	Label    string    `json:"label"`
	Keywords []string  `json:"keywords"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if !s.ID.Valid() {
		return Errorf(EINVALID, "section id %d is not a known section", uint8(s.ID))
	}
	if Normalize(s.Label) == "" {
		return Errorf(EINVALID, "section %s: label required", s.ID)
	}
	for i, k := range s.Keywords {
		if Normalize(k) == "" {
			return Errorf(EINVALID, "section %s: keyword %d is empty", s.ID, i)
		}
	}
	return nil
}
