package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult is the answer to a yes/no prompt.
type ConfirmResult int

const (
	ConfirmCancelled ConfirmResult = iota
	ConfirmYes
	ConfirmNo
)

// ConfirmModel asks a single yes/no question.
type ConfirmModel struct {
	question string
	keys     keyMap
	result   ConfirmResult
}

// NewConfirm builds a yes/no prompt for the question.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{
		question: question,
		keys:     newKeyMap(),
	}
}

// Result reports the answer, or ConfirmCancelled.
func (m ConfirmModel) Result() ConfirmResult {
	return m.result
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.result = ConfirmYes
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reject):
			m.result = ConfirmNo
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.result = ConfirmCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(styleOption.Render("[y]es  [n]o"))
	b.WriteString("  ")
	b.WriteString(styleHint.Render("[q]uit"))
	return styleCard.Render(b.String())
}

// RunConfirm asks the question and blocks for the answer.
func RunConfirm(question string) (ConfirmResult, error) {
	p := tea.NewProgram(NewConfirm(question))
	final, err := p.Run()
	if err != nil {
		return ConfirmCancelled, fmt.Errorf("tui: confirm prompt: %w", err)
	}
	return final.(ConfirmModel).Result(), nil
}
