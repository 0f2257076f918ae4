package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/storage"
)

const (
	// maxFrameDT caps the simulated time of one tick so a stalled
	// terminal does not teleport the falling objects.
	maxFrameDT = 0.1

	statusDuration = 3 * time.Second
)

// Options configures the terminal game model.
type Options struct {
	Session       *stardrift.Session
	Width, Height int    // Initial terminal size in cells
	ScreenshotDir string // Empty uses ~/.stardrift/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one Star Drift session.
type Model struct {
	session  *stardrift.Session
	screen   *core.Screen
	renderer *CellRenderer
	latch    *KeyLatch
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	screenshotDir string
	copyText      func(string) error
	lastTick      time.Time
	status        string
	statusUntil   time.Time
	quitting      bool
}

// NewModel creates a model for the session in opts.
// One terminal row is kept for the help and status line.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "~/.stardrift/screenshots"
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-1, 0))
	w, h := opts.Session.Size()

	hm := help.New()
	hm.Width = opts.Width

	return Model{
		session:       opts.Session,
		screen:        screen,
		renderer:      NewCellRenderer(screen, w, h),
		latch:         NewKeyLatch(),
		keys:          DefaultKeyMap(),
		help:          hm,
		logger:        logger,
		screenshotDir: dir,
		copyText:      clipboard.WriteAll,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.TargetFPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.latch.Click(m.renderer.ToWorld(msg.X, msg.Y))
		}
		return m, nil

	case tea.BlurMsg:
		// No key releases arrive while the terminal is unfocused.
		m.latch.Release()
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.setStatus(m.saveScreenshot())
		return m, nil
	}
	m.latch.Press(m.keys.Action(msg))
	return m, nil
}

// handleTick advances the session by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxFrameDT)
	}
	m.lastTick = now

	res := m.session.Step(m.latch.Poll(), dt)
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}
	return m, tickCmd(m.session.TargetFPS())
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusDuration)
}

// saveScreenshot writes the current frame as plain text and copies it to
// the clipboard. It returns a status line for the footer.
func (m *Model) saveScreenshot() string {
	m.session.Render(m.renderer)
	text := m.screen.String()

	dir, err := storage.ExpandHome(m.screenshotDir)
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}

	name := fmt.Sprintf("stardrift_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)

	if err := m.copyText(text); err != nil {
		m.logger.Debug("clipboard unavailable", "err", err)
		return "saved " + path
	}
	return "saved " + path + " (copied)"
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.renderer)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for one session and blocks until it quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
