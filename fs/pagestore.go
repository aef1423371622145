// Package fs provides file-based export of handbook pages.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/handbook"
)

// Ensure FileStore implements handbook.PageStore at compile time.
var _ handbook.PageStore = (*FileStore)(nil)

// FileStore implements handbook.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to the temporary directory as PageFileName(position, id).
func (s *FileStore) Save(ctx context.Context, position int, page *handbook.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return err
	}
	if position < 1 {
		return handbook.Errorf(handbook.EINVALID, "page position must be positive, got %d", position)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	path := filepath.Join(s.tempDir(), PageFileName(position, page.ID))
	return os.WriteFile(path, []byte(FormatPage(page)), 0644)
}

// PageFileName returns the export file name of a page, e.g. "03-income.md".
func PageFileName(position int, id handbook.SectionID) string {
	return fmt.Sprintf("%02d-%s.md", position, id)
}

// FormatPage formats a page with YAML frontmatter. The hash covers the
// Markdown body only, so it changes exactly when the content does.
func FormatPage(page *handbook.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(strconv.Quote(page.Title))
	b.WriteString("\nsection: ")
	b.WriteString(page.ID.String())
	b.WriteString("\nhash: ")
	b.WriteString(ComputeHash(page.Content))
	b.WriteString("\n---\n\n")
	b.WriteString(handbook.FormatPage(page))
	return b.String()
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// MarkerFile marks a directory as written by FileStore. Commit only replaces
// an existing directory that is empty or carries the marker.
const MarkerFile = ".handbook-export"

// Commit moves the saved pages into the final directory. Returns EINVALID if
// the final directory holds files from anything other than a previous export.
func (s *FileStore) Commit() error {
	if err := s.checkReplaceable(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.tempDir(), MarkerFile), nil, 0644); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) checkReplaceable() error {
	entries, err := os.ReadDir(s.finalDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Name() == MarkerFile {
			return nil
		}
	}
	if len(entries) > 0 {
		return handbook.Errorf(handbook.EINVALID, "%s is not empty and was not written by handbook export", s.finalDir())
	}
	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
