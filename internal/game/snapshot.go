package game

// Snapshot is an immutable view of the game state handed to the shell.
// Board is a value copy, so later moves cannot mutate it.
type Snapshot struct {
	Board   Board
	Score   int
	Best    int
	Moves   int
	Target  int
	Status  Status
	MaxTile int
	CanUndo bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Score:   g.score,
		Best:    g.best,
		Moves:   g.moves,
		Target:  g.target,
		Status:  g.status,
		MaxTile: g.board.MaxTile(),
		CanUndo: g.undo != nil,
	}
}
