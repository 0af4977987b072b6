package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/projtrack/internal/auth"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	promptHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PasswordModel is a single masked input. Enter submits, Esc or Ctrl+C
// cancels.
type PasswordModel struct {
	title     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewPasswordModel creates a focused password prompt.
func NewPasswordModel(title string) PasswordModel {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return PasswordModel{title: title, input: ti}
}

func (m PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m PasswordModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		promptTitleStyle.Render(m.title),
		m.input.View(),
		promptHelpStyle.Render("enter: confirm • esc: cancel"))
}

// Result returns the typed password. It fails with auth.ErrCancelled unless
// the user submitted.
func (m PasswordModel) Result() (string, error) {
	if !m.submitted {
		return "", auth.ErrCancelled
	}

	return m.input.Value(), nil
}

// PromptPassword runs the prompt as its own program.
func PromptPassword(title string) (string, error) {
	final, err := tea.NewProgram(NewPasswordModel(title)).Run()
	if err != nil {
		return "", fmt.Errorf("password prompt: %w", err)
	}

	return final.(PasswordModel).Result()
}

// Settle collects a password with prompt and resolves the open request
// with it. A dismissed prompt cancels the request, as does any failure that
// leaves it open.
func Settle(ctx context.Context, pending *auth.Pending, prompt func() (string, error)) error {
	password, err := prompt()
	if err != nil {
		pending.Cancel()
		return err
	}

	err = pending.Resolve(ctx, password)
	if !auth.IsTerminal(pending.State()) {
		pending.Cancel()
	}

	return err
}
