package library

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// idAnnotation matches a trailing `<!-- id: N -->` comment. The key is
// case-insensitive and whitespace inside the comment is tolerated. Trailing
// whitespace after the comment is captured so write-back can preserve it.
var idAnnotation = regexp.MustCompile(`(?i)\s*<!--\s*id:\s*(\d+)\s*-->(\s*)$`)

// extractID returns the id carried by the line's trailing annotation.
// Malformed or absent annotations are never an error; they report false.
func extractID(line string) (int, bool) {
	m := idAnnotation.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false // digits overflowing int; treat as absent
	}
	return id, true
}

// stripAnnotation removes a trailing id annotation, keeping whatever
// trailing whitespace followed it.
func stripAnnotation(line string) string {
	m := idAnnotation.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return line[:len(line)-len(m[0])] + m[2]
}

// annotate appends `<!-- id: N -->` to the line's semantic content,
// separated by a single space. An existing annotation is replaced and any
// trailing whitespace that followed the original content is preserved.
func annotate(line string, id int) string {
	line = stripAnnotation(line)
	content := strings.TrimRight(line, " \t")
	trailing := line[len(content):]
	return fmt.Sprintf("%s <!-- id: %d -->%s", content, id, trailing)
}
