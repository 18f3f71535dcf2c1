package docstore

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/magnetar/internal/library"
)

// delim separates the TOML metadata block from the document content.
const delim = "+++"

// frontmatter is the decoded shape of the recognized metadata keys.
type frontmatter struct {
	ID       *int     `toml:"id"`
	Kanban   bool     `toml:"kanban"`
	Areas    []string `toml:"areas"`
	Urgency  string   `toml:"urgency"`
	Strategy string   `toml:"strategy"`
	Interest string   `toml:"interest"`
}

// splitFrontmatter splits a document into its raw metadata block and its
// content. Both pieces keep their exact bytes (including the newlines
// around the delimiters) so reassembly is byte-faithful. A document that
// does not open with the delimiter has no metadata block.
func splitFrontmatter(text string) (front, content string, ok bool) {
	if len(text) < len(delim) || text[:len(delim)] != delim {
		return "", text, false
	}
	rest := text[len(delim):]
	idx := indexDelim(rest)
	if idx < 0 {
		return "", text, false
	}
	return rest[:idx], rest[idx+len(delim):], true
}

// indexDelim finds the closing delimiter at the start of a line.
func indexDelim(s string) int {
	for i := 0; i+len(delim) <= len(s); i++ {
		if s[i:i+len(delim)] == delim && (i == 0 || s[i-1] == '\n') {
			return i
		}
	}
	return -1
}

// decodeMeta decodes the raw metadata block into the library's metadata
// shape. Unknown keys are ignored here (MergeMeta preserves them);
// malformed TOML aborts the load. Priority names default to none.
func decodeMeta(front string) (library.Metadata, error) {
	var fm frontmatter
	if front != "" {
		if err := toml.Unmarshal([]byte(front), &fm); err != nil {
			return library.Metadata{}, fmt.Errorf("parsing TOML: %w", err)
		}
	}

	meta := library.Metadata{
		Kanban:   fm.Kanban,
		ID:       library.EmptyID(),
		Areas:    fm.Areas,
		Urgency:  library.ParsePriority(fm.Urgency),
		Strategy: library.ParsePriority(fm.Strategy),
		Interest: library.ParsePriority(fm.Interest),
	}
	if fm.ID != nil {
		if *fm.ID < 0 {
			return library.Metadata{}, fmt.Errorf("negative id %d", *fm.ID)
		}
		meta.ID = library.AssignedID(*fm.ID)
	}
	return meta, nil
}

// mergeFrontmatter decodes the raw block into a generic map, applies the
// overrides, and re-encodes. Returns TOML text with a trailing newline.
func mergeFrontmatter(front string, set map[string]any) (string, error) {
	m := make(map[string]any)
	if front != "" {
		if err := toml.Unmarshal([]byte(front), &m); err != nil {
			return "", fmt.Errorf("parsing TOML: %w", err)
		}
	}
	for k, v := range set {
		m[k] = v
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding TOML: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return string(data), nil
}
