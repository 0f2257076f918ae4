package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stardrift/internal/config"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

type menuEntry int

const (
	entryPlay menuEntry = iota
	entryDifficulty
	entryScores
	entryQuit
)

var menuEntries = []menuEntry{entryPlay, entryDifficulty, entryScores, entryQuit}

// presetCycle is the order the difficulty entry steps through.
var presetCycle = []config.DifficultyPreset{
	config.DifficultyFixed,
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuKeyMap defines the key bindings for the title menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Scores, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←", "easier"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	preset    config.DifficultyPreset
	highScore int
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	choice    MenuChoice
}

// NewMenuModel creates a title menu starting on Play.
// An empty preset shows as fixed.
func NewMenuModel(preset config.DifficultyPreset, highScore, width, height int) MenuModel {
	if preset == "" {
		preset = config.DifficultyFixed
	}
	h := help.New()
	h.Width = width
	return MenuModel{
		preset:    preset,
		highScore: highScore,
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.choice = MenuScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if menuEntries[m.cursor] == entryDifficulty {
			m.preset = stepPreset(m.preset, -1)
		}

	case key.Matches(msg, m.keys.Right):
		if menuEntries[m.cursor] == entryDifficulty {
			m.preset = stepPreset(m.preset, 1)
		}

	case key.Matches(msg, m.keys.Select):
		switch menuEntries[m.cursor] {
		case entryPlay:
			m.choice = MenuPlay
			return m, tea.Quit
		case entryDifficulty:
			m.preset = stepPreset(m.preset, 1)
		case entryScores:
			m.choice = MenuScores
			return m, tea.Quit
		case entryQuit:
			m.choice = MenuQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

// stepPreset moves through presetCycle, wrapping at both ends.
func stepPreset(p config.DifficultyPreset, delta int) config.DifficultyPreset {
	idx := 0
	for i, c := range presetCycle {
		if c == p {
			idx = i
			break
		}
	}
	n := len(presetCycle)
	return presetCycle[((idx+delta)%n+n)%n]
}

func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryPlay:
		return "Play"
	case entryDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.preset)
	case entryScores:
		return "High Scores"
	case entryQuit:
		return "Quit"
	}
	return ""
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  S T A R   D R I F T  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width)))
	b.WriteString("\n\n")

	for i, e := range menuEntries {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuSelectedStyle
		}
		b.WriteString(style.Render(centerText(cursor+m.entryLabel(e), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(centerText(m.help.View(m.keys), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.preset
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice        MenuChoice
	Preset        config.DifficultyPreset
	Width, Height int // Terminal size when the menu closed
}

// RunMenu runs the title menu and returns the selection.
func RunMenu(preset config.DifficultyPreset, highScore, width, height int) (MenuResult, error) {
	model := NewMenuModel(preset, highScore, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Preset: model.preset, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.choice == MenuNone {
		return MenuResult{Choice: MenuQuit, Preset: model.preset, Width: width, Height: height}, nil
	}

	return MenuResult{Choice: m.choice, Preset: m.preset, Width: m.width, Height: m.height}, nil
}
