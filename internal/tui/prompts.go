package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"metro.dev/metro/internal/engine"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via METRO_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (METRO_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("METRO_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("canceled")
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// PromptTextInput prompts the user for text input
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return finalModel.textInput.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultValue
	if err := survey.AskOne(&survey.Confirm{Message: prompt, Default: defaultValue}, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// BranchChoice represents a branch option in a selection prompt
type BranchChoice struct {
	Display string // What to show
	Value   string // Actual branch name
}

// BranchSelectModel is a branch selection prompt model with filtering
type BranchSelectModel struct {
	Choices  []BranchChoice
	Filtered []BranchChoice
	Filter   string
	Cursor   int
	Selected string
	Done     bool
	Err      error
	Message  string
}

// NewBranchSelectModel creates a selector with the cursor on initialIndex
func NewBranchSelectModel(message string, choices []BranchChoice, initialIndex int) BranchSelectModel {
	m := BranchSelectModel{
		Choices: choices,
		Message: message,
	}
	m.updateFiltered()
	if initialIndex >= 0 && initialIndex < len(m.Filtered) {
		m.Cursor = initialIndex
	}
	return m
}

// Init initializes the bubbletea model
func (m BranchSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m BranchSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if len(m.Filtered) > 0 && m.Cursor >= 0 && m.Cursor < len(m.Filtered) {
				m.Selected = m.Filtered[m.Cursor].Value
				m.Done = true
				return m, tea.Quit
			}
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Err = fmt.Errorf("canceled")
			m.Done = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
			} else {
				m.Cursor = len(m.Filtered) - 1
			}
			return m, nil
		case tea.KeyDown:
			if m.Cursor < len(m.Filtered)-1 {
				m.Cursor++
			} else {
				m.Cursor = 0
			}
			return m, nil
		case tea.KeyBackspace:
			if len(m.Filter) > 0 {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.updateFiltered()
				m.clampCursor()
			}
			return m, nil
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.updateFiltered()
			m.clampCursor()
			return m, nil
		}
	}
	return m, nil
}

func (m *BranchSelectModel) clampCursor() {
	if m.Cursor >= len(m.Filtered) {
		m.Cursor = len(m.Filtered) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *BranchSelectModel) updateFiltered() {
	if m.Filter == "" {
		m.Filtered = m.Choices
		return
	}

	filterLower := strings.ToLower(m.Filter)
	m.Filtered = []BranchChoice{}
	for _, choice := range m.Choices {
		if strings.Contains(strings.ToLower(choice.Value), filterLower) {
			m.Filtered = append(m.Filtered, choice)
		}
	}
}

// View renders the TUI
func (m BranchSelectModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Message))
	b.WriteString("\n")

	if m.Filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n\n", lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(m.Filter)))
	} else {
		b.WriteString("\n")
	}

	if len(m.Filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.Filtered {
			cursor := " "
			if i == m.Cursor {
				cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(">")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, choice.Display))
		}
	}

	b.WriteString(dimStyle.Render("\n(Press Enter to select, Ctrl+C to cancel, type to filter)"))

	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(b.String())
}

// PromptBranchSelection prompts the user to select a branch
func PromptBranchSelection(message string, choices []BranchChoice, initialIndex int) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	m := NewBranchSelectModel(message, choices, initialIndex)

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(BranchSelectModel); ok {
		if finalModel.Err != nil {
			return "", finalModel.Err
		}
		return finalModel.Selected, nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// BranchChoices builds selector entries for switchable branches. WIP branches
// are left out; branches with stashed work are marked. The returned index is
// the current branch, or -1.
func BranchChoices(branches []engine.BranchInfo) ([]BranchChoice, int) {
	choices := make([]BranchChoice, 0, len(branches))
	initialIndex := -1
	for _, b := range branches {
		if b.Name.IsWip() {
			continue
		}
		if b.IsCurrent {
			initialIndex = len(choices)
		}
		choices = append(choices, BranchChoice{
			Display: FormatBranch(b),
			Value:   b.Name.Name,
		})
	}
	return choices, initialIndex
}

// FormatBranch renders a branch for listings: name, current marker and stash marker
func FormatBranch(b engine.BranchInfo) string {
	var line string
	if b.Name.IsWip() {
		line = ColorWip(b.Name.Name)
	} else {
		line = ColorBranchName(b.Name.Name)
	}
	if b.IsCurrent {
		line += " " + ColorDim("(current)")
	}
	if b.HasWip {
		line += " " + ColorWip("[wip]")
	}
	return line
}
