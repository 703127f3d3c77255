package game

import "errors"

// Sentinel errors returned by the state machine. All of them are
// recoverable: the shell surfaces them as feedback and keeps running.
var (
	// ErrIllegalMove means the move would not change the board. The turn
	// does not count and no tile spawns.
	ErrIllegalMove = errors.New("game: move changes nothing")

	// ErrInvalidOperation means a move was attempted after the game ended.
	ErrInvalidOperation = errors.New("game: game is over")

	// ErrNothingToUndo means no prior turn is buffered.
	ErrNothingToUndo = errors.New("game: nothing to undo")

	// ErrBadTarget means the requested target tile is not one of the
	// allowed values.
	ErrBadTarget = errors.New("game: unsupported target tile")
)
