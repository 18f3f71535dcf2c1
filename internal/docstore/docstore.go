// Package docstore is the file collaborator of the library: it lists the
// markdown documents under a root folder, decodes their TOML metadata
// blocks, and performs the two write-back operations (content rewrite and
// metadata merge) as separate atomic file writes.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/papapumpkin/magnetar/internal/library"
)

// Store reads and rewrites the documents under a root folder. It
// implements library.Source and library.Writer.
type Store struct {
	root string
}

// New returns a store over the given root folder.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the folder the store operates on.
func (s *Store) Root() string {
	return s.root
}

// List returns every markdown document under the root in name order, with
// its metadata block decoded and its content text split out.
func (s *Store) List() ([]library.SourceDoc, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("docstore: reading %s: %w", s.root, err)
	}

	var docs []library.SourceDoc
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(s.root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("docstore: reading %s: %w", path, err)
		}

		front, content, _ := splitFrontmatter(string(data))
		meta, err := decodeMeta(front)
		if err != nil {
			return nil, fmt.Errorf("docstore: metadata block of %s: %w", path, err)
		}

		docs = append(docs, library.SourceDoc{
			Name:    strings.TrimSuffix(name, ".md"),
			Path:    path,
			Meta:    meta,
			Content: content,
		})
	}
	return docs, nil
}

// RewriteContent atomically replaces the document's content (text after
// the metadata block) with transform(current). The metadata block bytes
// pass through untouched.
func (s *Store) RewriteContent(path string, transform func(string) (string, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("docstore: reading %s: %w", path, err)
	}

	front, content, hasFront := splitFrontmatter(string(data))
	rewritten, err := transform(content)
	if err != nil {
		return fmt.Errorf("docstore: transforming %s: %w", path, err)
	}

	out := rewritten
	if hasFront {
		out = delim + front + delim + rewritten
	}
	return writeAtomic(path, []byte(out))
}

// MergeMeta merges the given keys into the document's metadata block,
// re-encoding the block with the merged key/value set. Keys the library
// does not recognize survive untouched. A document without a metadata
// block gets one. This write is independent of RewriteContent; a crash
// between the two leaves the document half-updated until the next
// reconciliation.
func (s *Store) MergeMeta(path string, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("docstore: reading %s: %w", path, err)
	}

	front, content, hadFront := splitFrontmatter(string(data))
	merged, err := mergeFrontmatter(front, set)
	if err != nil {
		return fmt.Errorf("docstore: metadata block of %s: %w", path, err)
	}

	// A freshly created block needs a line break before the content the
	// document started with.
	if !hadFront && !strings.HasPrefix(content, "\n") {
		content = "\n" + content
	}
	return writeAtomic(path, []byte(delim+"\n"+merged+delim+content))
}

// writeAtomic writes data via a temp file and rename.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("docstore: writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("docstore: renaming temp file: %w", err)
	}
	return nil
}
