package game

import (
	"math/rand"
	"slices"
	"time"
)

// BestStore is the persistence gateway for the best score. Implementations
// never fail loudly: LoadBest returns 0 when no record exists or the store
// is unreadable, SaveBest reports success without raising.
type BestStore interface {
	LoadBest() int
	SaveBest(value int) bool
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Targets lists the selectable target tiles, lowest first.
var Targets = []int{2048, 4096, 8192}

// ValidTarget reports whether v is a selectable target tile.
func ValidTarget(v int) bool {
	return slices.Contains(Targets, v)
}

// NextTarget returns the target after v in the selection cycle.
func NextTarget(v int) int {
	for i, t := range Targets {
		if t == v {
			return Targets[(i+1)%len(Targets)]
		}
	}
	return Targets[0]
}

// DefaultFourChance is the probability that a spawned tile is a 4.
const DefaultFourChance = 0.10

// undoState buffers the turn state right before a committed move.
type undoState struct {
	board Board
	score int
	moves int
}

// Options configures a new Game.
type Options struct {
	Target     int     // target tile, one of Targets; 0 means 2048
	FourChance float64 // probability of spawning a 4; 0 means DefaultFourChance
	Seed       int64   // RNG seed; 0 means time-based
}

// Game orchestrates the board, score bookkeeping, the one-slot undo buffer,
// and win/loss detection across turns. It is not safe for concurrent use;
// the shell handles one input to completion before the next.
type Game struct {
	board  Board
	score  int
	best   int
	moves  int
	target int
	status Status
	undo   *undoState

	fourChance float64
	rng        *rand.Rand
	store      BestStore
	storeOK    bool // last best-score write reached the store
}

// New creates a game with two spawned tiles. The best score is loaded from
// the store once, at construction; a nil store keeps it in memory only.
func New(store BestStore, opts Options) (*Game, error) {
	target := opts.Target
	if target == 0 {
		target = Targets[0]
	}
	if !ValidTarget(target) {
		return nil, ErrBadTarget
	}

	fourChance := opts.FourChance
	if fourChance == 0 {
		fourChance = DefaultFourChance
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		target:     target,
		fourChance: fourChance,
		rng:        rand.New(rand.NewSource(seed)),
		store:      store,
		storeOK:    true,
	}
	if store != nil {
		g.best = store.LoadBest()
	}

	g.reset()
	return g, nil
}

// reset clears the board and turn state, then spawns the two opening tiles.
// The best score is untouched.
func (g *Game) reset() {
	g.board = Board{}
	g.score = 0
	g.moves = 0
	g.status = StatusOngoing
	g.undo = nil
	g.board.Spawn(g.rng, g.fourChance)
	g.board.Spawn(g.rng, g.fourChance)
}

// Apply plays one move. On success the board is committed, the score and
// move count advance, one tile spawns, and the previous turn becomes
// undoable. A move that changes nothing fails with ErrIllegalMove and
// leaves everything untouched, including the undo buffer. Moves after the
// game ended fail with ErrInvalidOperation.
func (g *Game) Apply(dir Direction) (Snapshot, error) {
	if g.status != StatusOngoing {
		return g.Snapshot(), ErrInvalidOperation
	}

	res := Slide(g.board, dir)
	if !res.Changed {
		return g.Snapshot(), ErrIllegalMove
	}

	g.undo = &undoState{board: g.board, score: g.score, moves: g.moves}
	g.board = res.Board
	g.score += res.Gained
	g.moves++
	g.board.Spawn(g.rng, g.fourChance)

	if g.score > g.best {
		g.best = g.score
		g.persistBest()
	}

	g.status = g.computeStatus()
	return g.Snapshot(), nil
}

// Undo restores the board, score, and move count from the buffered turn.
// The buffer is single-use: a second Undo without an intervening move fails
// with ErrNothingToUndo. The restored state is always Ongoing.
func (g *Game) Undo() (Snapshot, error) {
	if g.undo == nil {
		return g.Snapshot(), ErrNothingToUndo
	}

	g.board = g.undo.board
	g.score = g.undo.score
	g.moves = g.undo.moves
	g.undo = nil
	g.status = StatusOngoing

	return g.Snapshot(), nil
}

// NewGame starts over with a fresh board. A nonzero target selects a new
// target tile; 0 keeps the current one. The best score carries over.
func (g *Game) NewGame(target int) (Snapshot, error) {
	if target != 0 {
		if !ValidTarget(target) {
			return g.Snapshot(), ErrBadTarget
		}
		g.target = target
	}

	g.reset()
	return g.Snapshot(), nil
}

// SetTarget changes the target tile of the running game and recomputes the
// status against it.
func (g *Game) SetTarget(target int) (Snapshot, error) {
	if !ValidTarget(target) {
		return g.Snapshot(), ErrBadTarget
	}

	g.target = target
	g.status = g.computeStatus()
	return g.Snapshot(), nil
}

// ResetBest zeroes the best score and persists immediately, regardless of
// game status.
func (g *Game) ResetBest() Snapshot {
	g.best = 0
	g.persistBest()
	return g.Snapshot()
}

// computeStatus derives the status from the current board and target.
func (g *Game) computeStatus() Status {
	if g.board.MaxTile() >= g.target {
		return StatusWon
	}
	if !g.board.CanMove() {
		return StatusLost
	}
	return StatusOngoing
}

// persistBest writes the best score through the gateway, best effort.
func (g *Game) persistBest() {
	if g.store == nil {
		return
	}
	g.storeOK = g.store.SaveBest(g.best)
}

// BestPersisted reports whether the last best-score write reached the
// store. False means the best score is held in memory for this session.
func (g *Game) BestPersisted() bool {
	return g.storeOK
}
