package library

import (
	"fmt"
	"strings"
)

// Flush writes assigned ids back into every touched document. Only the
// recorded heading and todo lines are rewritten; head, tail, and all
// other lines pass through untouched. The content rewrite and the
// metadata merge are separate writes; there is no rollback if the second
// fails, the next reconciliation re-detects and re-fills whatever did not
// persist.
func (l *Library) Flush(w Writer) error {
	for _, p := range l.Projects {
		if !l.dirty[p] {
			continue
		}
		path := l.paths[p]
		if path == "" {
			continue
		}

		if err := w.RewriteContent(path, func(content string) (string, error) {
			return l.annotateLines(p, content), nil
		}); err != nil {
			return fmt.Errorf("library: rewriting %s: %w", path, err)
		}

		set := map[string]any{}
		if id, ok := p.ID.Value(); ok {
			set["id"] = id
		}
		if err := w.MergeMeta(path, set); err != nil {
			return fmt.Errorf("library: merging metadata of %s: %w", path, err)
		}

		delete(l.dirty, p)
	}
	return nil
}

// annotateLines rewrites exactly the lines recorded at parse time with the
// current id annotations. The implicit topic of a heading-less document
// has no line to carry an annotation and is skipped; its id is scoped to
// the project and reassigned on each load.
func (l *Library) annotateLines(p *Project, content string) string {
	lines := strings.Split(content, "\n")
	for _, b := range p.Boards {
		if id, ok := b.ID.Value(); ok && b.line >= 0 && b.line < len(lines) {
			lines[b.line] = annotate(lines[b.line], id)
		}
		for _, t := range b.Todos {
			if id, ok := t.ID.Value(); ok && t.line >= 0 && t.line < len(lines) {
				lines[t.line] = annotate(lines[t.line], id)
			}
		}
	}
	return strings.Join(lines, "\n")
}
