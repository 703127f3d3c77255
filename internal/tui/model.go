package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for the 2048 board view.
type Model struct {
	game     *game.Game
	store    *storage.Store
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	status   string
	recorded bool // Whether the finished game has been written to history
	quitting bool
}

// NewModel creates a new Bubble Tea model around an initialized game.
// store may be nil when persistence is unavailable.
func NewModel(g *game.Game, store *storage.Store) Model {
	return Model{
		game:  g,
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model. The game is turn-based, so there is no tick
// loop; the model only reacts to input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.doMove(game.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.doMove(game.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.doMove(game.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.doMove(game.DirRight)

	case key.Matches(msg, m.keys.Undo):
		return m.doUndo()
	case key.Matches(msg, m.keys.New):
		return m.doNewGame()
	case key.Matches(msg, m.keys.Target):
		return m.doCycleTarget()
	case key.Matches(msg, m.keys.ResetBest):
		return m.doResetBest()
	}

	return m, nil
}

// handleMouse maps left-button presses on the on-screen controls to the
// same actions as the key bindings.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch hitControl(m.game.Snapshot().Target, msg.X, msg.Y) {
	case ctlNewGame:
		return m.doNewGame()
	case ctlUndo:
		return m.doUndo()
	case ctlTarget:
		return m.doCycleTarget()
	case ctlResetBest:
		return m.doResetBest()
	case ctlUp:
		return m.doMove(game.DirUp)
	case ctlLeft:
		return m.doMove(game.DirLeft)
	case ctlDown:
		return m.doMove(game.DirDown)
	case ctlRight:
		return m.doMove(game.DirRight)
	}

	return m, nil
}

// doMove applies a directional move and reports recoverable errors in the
// status line.
func (m Model) doMove(dir game.Direction) (tea.Model, tea.Cmd) {
	m.status = ""

	snap, err := m.game.Apply(dir)
	switch {
	case errors.Is(err, game.ErrIllegalMove):
		m.status = "that move changes nothing"
		return m, nil
	case errors.Is(err, game.ErrInvalidOperation):
		m.status = "game over, press n for a new game"
		return m, nil
	case err != nil:
		m.status = err.Error()
		return m, nil
	}

	if snap.Status != game.StatusOngoing {
		m.recordOutcome(snap)
	}
	return m, nil
}

func (m Model) doUndo() (tea.Model, tea.Cmd) {
	m.status = ""

	if _, err := m.game.Undo(); err != nil {
		if errors.Is(err, game.ErrNothingToUndo) {
			m.status = "nothing to undo"
		} else {
			m.status = err.Error()
		}
		return m, nil
	}

	// Undoing out of a terminal state reopens the game; the eventual
	// outcome should be recorded again.
	m.recorded = false
	return m, nil
}

func (m Model) doNewGame() (tea.Model, tea.Cmd) {
	m.abandonIfOngoing()
	m.status = ""
	m.recorded = false

	if _, err := m.game.NewGame(0); err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m Model) doCycleTarget() (tea.Model, tea.Cmd) {
	m.status = ""

	next := game.NextTarget(m.game.Snapshot().Target)
	snap, err := m.game.SetTarget(next)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	if snap.Status != game.StatusOngoing {
		m.recordOutcome(snap)
	} else {
		// Raising the target past the max tile reopens a won game.
		m.recorded = false
	}
	return m, nil
}

func (m Model) doResetBest() (tea.Model, tea.Cmd) {
	m.game.ResetBest()
	if m.game.BestPersisted() {
		m.status = "best score reset"
	} else {
		m.status = "best score reset (not saved)"
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.abandonIfOngoing()
	m.quitting = true
	return m, tea.Quit
}

// recordOutcome writes a finished game to history, once per game.
func (m *Model) recordOutcome(snap game.Snapshot) {
	if m.recorded || m.store == nil {
		return
	}

	outcome := storage.OutcomeLost
	if snap.Status == game.StatusWon {
		outcome = storage.OutcomeWon
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(storage.GameRecord{
		Score:   snap.Score,
		Moves:   snap.Moves,
		MaxTile: snap.MaxTile,
		Target:  snap.Target,
		Outcome: outcome,
	})
	m.recorded = true
}

// abandonIfOngoing records an in-progress game that is being walked away
// from, so history keeps a trace of unfinished runs too.
func (m *Model) abandonIfOngoing() {
	if m.recorded || m.store == nil {
		return
	}

	snap := m.game.Snapshot()
	if snap.Status != game.StatusOngoing || snap.Score == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(storage.GameRecord{
		Score:   snap.Score,
		Moves:   snap.Moves,
		MaxTile: snap.MaxTile,
		Target:  snap.Target,
		Outcome: storage.OutcomeQuit,
	})
	m.recorded = true
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store) error {
	model := NewModel(g, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable clicking the on-screen controls
	)

	_, err := p.Run()
	return err
}
