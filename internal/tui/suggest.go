// Package tui renders the interactive prompts: the one-candidate-at-a-time
// suggestion loop and the yes/no confirmation for a pending candidate.
// The models only relay decisions into the core; closing a prompt without
// answering mutates nothing.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/magnetar/internal/library"
	"github.com/papapumpkin/magnetar/internal/suggest"
)

// Outcome is how a suggestion prompt ended.
type Outcome int

const (
	OutcomeCancelled Outcome = iota // prompt closed without a decision
	OutcomeAccepted                 // a candidate was accepted
	OutcomeExhausted                // every candidate was rejected
)

// SuggestModel presents a suggestion session one candidate at a time.
type SuggestModel struct {
	session *suggest.Session
	keys    keyMap

	outcome  Outcome
	accepted *library.Todo
	width    int
}

// NewSuggest wraps a session in a prompt model.
func NewSuggest(session *suggest.Session) SuggestModel {
	return SuggestModel{
		session: session,
		keys:    newKeyMap(),
	}
}

// Outcome reports how the prompt ended.
func (m SuggestModel) Outcome() Outcome {
	return m.outcome
}

// Accepted returns the accepted todo, or nil.
func (m SuggestModel) Accepted() *library.Todo {
	return m.accepted
}

func (m SuggestModel) Init() tea.Cmd {
	return nil
}

func (m SuggestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.accepted = m.session.Accept()
			m.outcome = OutcomeAccepted
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reject):
			m.session.Reject()
			if m.session.Current() == nil {
				m.outcome = OutcomeExhausted
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Quit):
			// Cancellation: the session stays suspended, nothing mutated.
			m.outcome = OutcomeCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SuggestModel) View() string {
	todo := m.session.Current()
	if todo == nil {
		return ""
	}

	pos, total := m.session.Position()

	var b strings.Builder
	b.WriteString(styleContext.Render(fmt.Sprintf("candidate %d of %d", pos, total)))
	b.WriteString("\n\n")

	desc := todo.Description
	if todo.Urgency() == library.PriorityUrgent {
		desc = styleUrgent.Render("! ") + desc
	}
	b.WriteString(styleTitle.Render(desc))
	b.WriteString("\n")
	b.WriteString(styleContext.Render(fmt.Sprintf("%s · %s", todo.Project.Name, boardLabel(todo.Board))))
	b.WriteString("\n\n")
	b.WriteString(styleOption.Render("[a]ccept  [r]eject"))
	b.WriteString("  ")
	b.WriteString(styleHint.Render("[q]uit"))

	return styleCard.Render(b.String())
}

// boardLabel names a board for display: the topic name, or the kanban
// column.
func boardLabel(b *library.Board) string {
	if b.Kind == library.KindTopic {
		return b.Name
	}
	return b.Kind.String()
}

// RunSuggest runs the suggestion prompt, blocking until a decision or
// cancellation.
func RunSuggest(session *suggest.Session) (Outcome, *library.Todo, error) {
	p := tea.NewProgram(NewSuggest(session))
	final, err := p.Run()
	if err != nil {
		return OutcomeCancelled, nil, fmt.Errorf("tui: suggestion prompt: %w", err)
	}
	m := final.(SuggestModel)
	return m.Outcome(), m.Accepted(), nil
}
