package library

import (
	"fmt"
	"sort"
)

// SourceDoc is one document as delivered by the backing store: its name
// (the project name), its path for write-back, its decoded metadata block,
// and its content text with the metadata block already removed.
type SourceDoc struct {
	Name    string
	Path    string
	Meta    Metadata
	Content string
}

// Source lists the documents backing a library. Defined here (where
// consumed) per project convention rather than in the docstore package.
type Source interface {
	List() ([]SourceDoc, error)
}

// Writer persists id assignments back into a document. The content
// rewrite and the metadata merge are two independent writes with no
// shared transaction; a crash between them leaves the document
// half-updated until the next reconciliation.
type Writer interface {
	// RewriteContent atomically replaces a document's content (text
	// after the metadata block) with transform(current).
	RewriteContent(path string, transform func(string) (string, error)) error
	// MergeMeta merges the given keys into the document's metadata
	// block, leaving unrecognized keys untouched.
	MergeMeta(path string, set map[string]any) error
}

// Library owns every parsed project plus, per project, the write-back
// handle of its source document. Build one with Load; rebuild rather than
// mutate when the document set changes.
type Library struct {
	Projects []*Project

	paths map[*Project]string
	dirty map[*Project]bool
}

// Load parses every document of the source into a project, in document
// order. A kanban document without headings aborts the whole load.
func Load(src Source) (*Library, error) {
	docs, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("library: listing documents: %w", err)
	}

	lib := &Library{
		paths: make(map[*Project]string, len(docs)),
		dirty: make(map[*Project]bool),
	}
	for _, doc := range docs {
		project, err := parseDocument(doc.Name, doc.Content, doc.Meta)
		if err != nil {
			return nil, fmt.Errorf("library: parsing %s: %w", doc.Path, err)
		}
		lib.Projects = append(lib.Projects, project)
		lib.paths[project] = doc.Path
	}
	return lib, nil
}

// ProjectNames returns every project name in document order.
func (l *Library) ProjectNames() []string {
	names := make([]string, 0, len(l.Projects))
	for _, p := range l.Projects {
		names = append(names, p.Name)
	}
	return names
}

// AreaNames returns every area tag across the library, deduplicated and
// sorted.
func (l *Library) AreaNames() []string {
	seen := make(map[string]bool)
	var areas []string
	for _, p := range l.Projects {
		for _, a := range p.Areas {
			if !seen[a] {
				seen[a] = true
				areas = append(areas, a)
			}
		}
	}
	sort.Strings(areas)
	return areas
}

// ProjectByID returns the project with the given id, or nil. Linear scan;
// libraries are small.
func (l *Library) ProjectByID(id int) *Project {
	for _, p := range l.Projects {
		if n, ok := p.ID.Value(); ok && n == id {
			return p
		}
	}
	return nil
}

// TodoByID returns the todo with the given id, or nil.
func (l *Library) TodoByID(id int) *Todo {
	for _, p := range l.Projects {
		for _, b := range p.Boards {
			for _, t := range b.Todos {
				if n, ok := t.ID.Value(); ok && n == id {
					return t
				}
			}
		}
	}
	return nil
}

// DocumentPath returns the source document path backing the project, or
// empty string for a project the library does not own.
func (l *Library) DocumentPath(p *Project) string {
	return l.paths[p]
}
