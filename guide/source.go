package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/fwojciec/handbook"
)

//go:embed content/*.html
var content embed.FS

// Ensure Source implements handbook.ContentSource at compile time.
var _ handbook.ContentSource = (*Source)(nil)

// Source serves section HTML fragments named "<id>.html" from a file system.
type Source struct {
	fsys fs.FS
}

// NewSource returns a Source reading fragments from the root of fsys.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Embedded returns a Source over the content compiled into the binary.
func Embedded() *Source {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		panic(err)
	}
	return NewSource(sub)
}

// SectionHTML returns the HTML fragment for id.
// Returns ENOTFOUND if the section has no content.
func (s *Source) SectionHTML(id handbook.SectionID) (string, error) {
	name := id.String() + ".html"
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", handbook.Errorf(handbook.ENOTFOUND, "no content for section %s", id)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
