// Package tui provides an interactive terminal scale explorer
package tui

import (
	"fmt"
	"strings"

	"github.com/RocknRolo/PowerScale/pkg/theory"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	gold     = lipgloss.Color("#FFD75F")
	teal     = lipgloss.Color("#5FD7D7")
	dimGray  = lipgloss.Color("#666666")
	darkGray = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(teal)

	scaleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold)

	toneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimGray).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(teal).
			Padding(1, 2)
)

// Model represents the TUI model
type Model struct {
	rootInput textinput.Model
	mode      int
	familyIdx int
	width     int
	height    int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "C"
	ti.Prompt = "Root: "
	ti.CharLimit = 12
	ti.Width = 16
	ti.Focus()

	return Model{
		rootInput: ti,
		mode:      1,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.mode--
			return m, nil
		case "right":
			m.mode++
			return m, nil
		case "up":
			m.familyIdx = (m.familyIdx + len(theory.Families()) - 1) % len(theory.Families())
			return m, nil
		case "down":
			m.familyIdx = (m.familyIdx + 1) % len(theory.Families())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.rootInput, cmd = m.rootInput.Update(msg)
	return m, cmd
}

func (m Model) root() string {
	if v := strings.TrimSpace(m.rootInput.Value()); v != "" {
		return v
	}
	return "C"
}

func (m Model) family() theory.Family {
	return theory.Families()[m.familyIdx]
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" POWERSCALE "))
	s.WriteString("\n")
	s.WriteString(m.rootInput.View())
	s.WriteString("\n\n")

	family := m.family()
	mode := theory.NormalizeMode(m.mode)
	s.WriteString(labelStyle.Render(fmt.Sprintf("Family: %s", family)))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render(fmt.Sprintf("Mode:   %d (%s)", mode, theory.ModeName(family, mode))))
	s.WriteString("\n\n")

	scale, err := theory.ComputeScale(m.root(), m.mode, family)
	if err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", err)))
	} else {
		s.WriteString(scaleStyle.Render(scale.String()))
		s.WriteString("\n\n")
		for i, tone := range scale {
			s.WriteString(toneStyle.Render(fmt.Sprintf("%d. %-6s (accidental %+d)", i+1, tone, tone.Accidental)))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("type a root note • ←/→: mode • ↑/↓: family • esc: quit"))

	return boxStyle.Render(s.String())
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
