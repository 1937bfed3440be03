package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/game"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Battle screen layout
const (
	boardGap      = 6
	messageLines  = 3
	screenPadding = 2
)

// Options configures a battle model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Name    string         // Human player name, random if empty
	Store   *storage.Store // Optional, results are not saved when nil
	Logger  *log.Logger    // Optional
}

// Model is the Bubble Tea model for one human-versus-CPU battle.
type Model struct {
	opts   Options
	rng    *rand.Rand
	match  *game.Match
	human  *game.Player
	cpu    *game.Player
	cursor *cursorSource

	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	messages []string
	notice   string // Last rejected move, cleared on the next valid one

	cpuWait    int // Ticks left before the CPU answers
	showStatus bool
	saved      bool
	leaders    []storage.Standing
	width      int
	quitting   bool
}

// NewModel creates a battle with freshly placed fleets.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.TUI.TickRate
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		opts:  opts,
		rng:   core.NewRand(opts.Runtime.Seed),
		keys:  DefaultKeyMap(),
		help:  help.New(),
		width: opts.Runtime.ScreenW,
		screen: core.NewScreen(
			2*game.BoardWidth+boardGap+2*screenPadding,
			game.BoardHeight+messageLines+4,
		),
	}
	if err := m.newMatch(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newMatch sets up fleets and players for a new battle.
func (m *Model) newMatch() error {
	cfg := m.opts.Config
	setup := cfg.Setup()

	name := m.opts.Name
	if name == "" {
		name = game.RandomName(m.rng, cfg.Players.Names)
	}

	m.cursor = newCursorSource()
	human, err := setup.Human(name, m.rng, m.cursor)
	if err != nil {
		return err
	}
	cpu, err := setup.CPU(cfg.Players.CPUName, m.rng)
	if err != nil {
		return err
	}

	opts := []game.MatchOption{game.WithPhrases(cfg.GamePhrases())}
	if m.opts.Logger != nil {
		opts = append(opts, game.WithLogger(m.opts.Logger))
	}

	m.human, m.cpu = human, cpu
	m.match = game.NewMatch(m.rng, human, cpu, opts...)
	m.messages = []string{fmt.Sprintf("Ahoy %s! %s awaits your first shot.", human.Name, cpu.Name)}
	m.notice = ""
	m.cpuWait = 0
	m.saved = false
	m.leaders = nil
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionStatus:
		m.showStatus = !m.showStatus
		return m, nil
	case core.ActionRestart:
		if m.match.Over() {
			if err := m.newMatch(); err != nil {
				m.notice = err.Error()
			}
		}
		return m, nil
	case core.ActionFire:
		m.fire()
		return m, nil
	}

	if d, ok := action.Dir(); ok && !m.match.Over() {
		m.cursor.Move(d)
	}
	return m, nil
}

// humanTurn reports whether the human may fire now.
func (m Model) humanTurn() bool {
	return !m.match.Over() && m.match.Current() == m.human
}

// fire shoots at the cursor on the human's turn.
func (m *Model) fire() {
	if !m.humanTurn() {
		return
	}

	res, err := m.match.Step()
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
	m.record(res)
	m.cursor.Follow(m.cpu.Grid, res.Shot.Coord)
	m.cpuWait = m.opts.Config.TUI.CPUThinkTicks
}

// handleTick lets the CPU answer once its think delay has passed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.match.Over() && m.match.Current() == m.cpu {
		if m.cpuWait > 0 {
			m.cpuWait--
		} else if res, err := m.match.Step(); err != nil {
			m.notice = err.Error()
		} else {
			m.record(res)
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// record appends a turn to the message log and finishes the match if it ended.
func (m *Model) record(res game.TurnResult) {
	m.messages = append(m.messages, game.Describe(res))
	if len(m.messages) > messageLines {
		m.messages = m.messages[len(m.messages)-messageLines:]
	}
	if res.Over {
		m.finish()
	}
}

// finish saves the result once and loads the leaderboard.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true

	result := m.match.Result()
	if m.opts.Logger != nil {
		m.opts.Logger.Info("battle finished",
			"match", result.MatchID,
			"winner", result.Winner,
			"shots", result.Shots,
		)
	}
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveResult(result); err != nil {
		m.notice = err.Error()
		return
	}
	if leaders, err := m.opts.Store.Leaders(5); err == nil {
		m.leaders = leaders
	}
}

// draw renders both boards, the cursor, the message log and fleet status.
func (m Model) draw() {
	scr := m.screen
	scr.Clear()

	ownX := screenPadding
	enemyX := ownX + game.BoardWidth + boardGap
	top := 2

	scr.DrawTextColored(ownX, 0, fmt.Sprintf("BATTLESHIP  match %s  turn %d", m.match.ID(), m.match.Turns()), core.ColorYellow)

	game.DrawBoard(scr, ownX, top, m.human.Name, m.human.Grid, false)
	game.DrawBoard(scr, enemyX, top, m.cpu.Name, m.cpu.Grid, true)

	if m.humanTurn() {
		x, y := game.CellOrigin(enemyX, top, m.cursor.pos)
		scr.SetColored(x-1, y, '[', core.ColorYellow)
		scr.SetColored(x+1, y, ']', core.ColorYellow)
	}

	y := top + game.BoardHeight + 1
	for i, msg := range m.messages {
		color := core.ColorGray
		if i == len(m.messages)-1 {
			color = core.ColorWhite
		}
		scr.DrawTextColored(ownX, y+i, msg, color)
	}
	if m.notice != "" {
		scr.DrawTextColored(ownX, y+messageLines, m.notice, core.ColorRed)
	}
}

// statusView lists both fleets side by side.
func (m Model) statusView() string {
	col := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(game.BoardWidth)

	own := "Your fleet\n" + strings.Join(game.StatusLines(m.human), "\n")
	enemy := "Enemy fleet\n" + strings.Join(game.StatusLines(m.cpu), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, col.Render(own), "  ", col.Render(enemy))
}

// turnLine describes whose move it is.
func (m Model) turnLine() string {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case m.match.Over():
		w := m.match.Winner()
		if w == m.human {
			return style.Foreground(lipgloss.Color("2")).Render(fmt.Sprintf("Victory! %s sank the whole fleet in %d shots.", w.Name, m.match.Stats(0).Shots))
		}
		return style.Foreground(lipgloss.Color("1")).Render(fmt.Sprintf("Defeat. %s sank your fleet. Press r for a rematch.", w.Name))
	case m.humanTurn():
		return style.Foreground(lipgloss.Color("229")).Render("Your turn: aim and fire.")
	default:
		return style.Foreground(lipgloss.Color("241")).Render(m.cpu.Name + " is taking aim...")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.turnLine())
	b.WriteString("\n")

	if m.showStatus {
		b.WriteString(m.statusView())
		b.WriteString("\n")
	}
	if m.match.Over() && len(m.leaders) > 0 {
		b.WriteString(renderLeaderboard(m.leaders, m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Match returns the running match.
func (m Model) Match() *game.Match {
	return m.match
}

// Run starts the Bubble Tea program for a battle in the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

