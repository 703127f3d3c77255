// Package game implements the 2048 grid engine and game state machine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package game

import "math/rand"

// Size is the board dimension.
const Size = 4

// Board is a fixed Size x Size grid of tile values. 0 means empty;
// every nonzero cell is a power of 2 >= 2.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// At returns the value at (row, col).
func (b Board) At(row, col int) int {
	return b[row][col]
}

// EmptyCells returns the coordinates of all empty cells.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (b Board) HasEmptyCell() bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	return !b.HasEmptyCell()
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// HasPossibleMerge reports whether any two adjacent tiles are equal.
func (b Board) HasPossibleMerge() bool {
	for r := range Size {
		for c := range Size {
			val := b[r][c]
			if c < Size-1 && b[r][c+1] == val {
				return true
			}
			if r < Size-1 && b[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any of the four directions would change the board.
func (b Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// Spawn places a new tile in a uniformly chosen empty cell and returns its
// coordinate. The value is 2 with probability 1-fourChance, 4 otherwise.
// Returns false if the board is full; the board is not modified.
func (b *Board) Spawn(rng *rand.Rand, fourChance float64) (Cell, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourChance {
		value = 4
	}
	b[cell.Row][cell.Col] = value

	return cell, true
}
