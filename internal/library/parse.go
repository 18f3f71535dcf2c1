package library

import "strings"

const (
	headingPrefix  = "##"
	checkboxPrefix = "- [ ]"

	// defaultTopicName names the implicit board of a freeform document
	// without headings.
	defaultTopicName = "Default"
)

// kanbanKinds maps normalized heading text to a board kind. Headings that
// match nothing fall back to KindTodo.
var kanbanKinds = map[string]BoardKind{
	"in work":    KindInWork,
	"todo":       KindTodo,
	"deep todo":  KindDeepTodo,
	"repetitive": KindRepetitive,
}

// parseDocument converts one document's content (text after the metadata
// block) into a Project with back-references wired and, for every
// id-bearing line, its content line index recorded for write-back.
//
// The head (lines before the first heading) and the tail (lines after the
// last heading or todo line) pass through verbatim and are never parsed.
func parseDocument(name, content string, meta Metadata) (*Project, error) {
	lines := strings.Split(content, "\n")

	project := &Project{
		ID:       meta.ID,
		Name:     name,
		Type:     TypeFreeform,
		Urgency:  meta.Urgency,
		Strategy: meta.Strategy,
		Interest: meta.Interest,
		Areas:    meta.Areas,
	}
	if meta.Kanban {
		project.Type = TypeKanban
	}

	bodyStart := firstHeading(lines)
	if bodyStart < 0 {
		if project.Type == TypeKanban {
			return nil, ErrNoBoards
		}
		// Freeform without headings: the whole content is body, grouped
		// under one implicit topic.
		bodyStart = 0
	}
	bodyEnd := lastStructuralLine(lines, bodyStart)

	var board *Board
	for i := bodyStart; i <= bodyEnd; i++ {
		line := lines[i]
		switch {
		case isHeading(line):
			board = parseBoard(line, project.Type)
			board.line = i
			board.Project = project
			project.Boards = append(project.Boards, board)

		case isTodoLine(line):
			if board == nil {
				board = &Board{
					Kind:    KindTopic,
					Name:    defaultTopicName,
					ID:      EmptyID(),
					Project: project,
					line:    -1,
				}
				project.Boards = append(project.Boards, board)
			}
			todo := parseTodo(line)
			todo.line = i
			todo.Project = project
			todo.Board = board
			board.Todos = append(board.Todos, todo)
		}
	}

	// A freeform document with no headings and no todos still presents
	// its implicit topic so the project shape is uniform.
	if len(project.Boards) == 0 {
		project.Boards = append(project.Boards, &Board{
			Kind:    KindTopic,
			Name:    defaultTopicName,
			ID:      EmptyID(),
			Project: project,
			line:    -1,
		})
	}

	return project, nil
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, headingPrefix)
}

func isTodoLine(line string) bool {
	return strings.HasPrefix(line, checkboxPrefix)
}

// firstHeading returns the index of the first heading line, or -1.
func firstHeading(lines []string) int {
	for i, line := range lines {
		if isHeading(line) {
			return i
		}
	}
	return -1
}

// lastStructuralLine returns the index of the last heading or todo line at
// or after start. Lines beyond it form the verbatim tail. When no such
// line exists the whole remainder is body.
func lastStructuralLine(lines []string, start int) int {
	for i := len(lines) - 1; i >= start; i-- {
		if isHeading(lines[i]) || isTodoLine(lines[i]) {
			return i
		}
	}
	return len(lines) - 1
}

// parseBoard builds a board from a heading line. The id annotation is
// extracted from the raw line; the remaining heading text becomes the
// topic name, or selects the kanban kind case-insensitively.
func parseBoard(line string, typ ProjectType) *Board {
	board := &Board{ID: EmptyID()}
	if id, ok := extractID(line); ok {
		board.ID = AssignedID(id)
	}

	title := strings.TrimSpace(strings.TrimLeft(stripAnnotation(line), "#"))
	if typ == TypeKanban {
		kind, ok := kanbanKinds[strings.ToLower(title)]
		if !ok {
			kind = KindTodo
		}
		board.Kind = kind
		return board
	}

	board.Kind = KindTopic
	board.Name = title
	if board.Name == "" {
		board.Name = defaultTopicName
	}
	return board
}

// parseTodo builds a todo from a checkbox line: the id annotation and the
// checkbox marker are stripped, link-bracket wrappers are removed with
// their inner text kept, and the rest is the description.
func parseTodo(line string) *Todo {
	todo := &Todo{ID: EmptyID()}
	if id, ok := extractID(line); ok {
		todo.ID = AssignedID(id)
	}

	desc := strings.TrimPrefix(stripAnnotation(line), checkboxPrefix)
	desc = strings.ReplaceAll(desc, "[[", "")
	desc = strings.ReplaceAll(desc, "]]", "")
	todo.Description = strings.TrimSpace(desc)
	return todo
}
