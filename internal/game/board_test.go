package game

import (
	"math/rand"
	"testing"
)

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := board.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}

	if !board.HasEmptyCell() {
		t.Error("HasEmptyCell should be true")
	}
	if board.IsFull() {
		t.Error("IsFull should be false")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := board.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestCanMove(t *testing.T) {
	// Full board, no adjacent equals: stuck.
	stuck := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if stuck.CanMove() {
		t.Error("board with no empty cell and no merge should not be movable")
	}

	// Same board with one merge available.
	mergeable := stuck
	mergeable[0][1] = 2
	if !mergeable.CanMove() {
		t.Error("board with an adjacent pair should be movable")
	}

	// Same board with one hole.
	holed := stuck
	holed[2][2] = 0
	if !holed.CanMove() {
		t.Error("board with an empty cell should be movable")
	}
}

func TestSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var board Board
	cell, ok := board.Spawn(rng, DefaultFourChance)
	if !ok {
		t.Fatal("Spawn on empty board should succeed")
	}

	v := board[cell.Row][cell.Col]
	if v != 2 && v != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", v)
	}
	if len(board.EmptyCells()) != Size*Size-1 {
		t.Error("Spawn should fill exactly one cell")
	}
}

func TestSpawnFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	board := Board{}
	for r := range Size {
		for c := range Size {
			board[r][c] = 2
		}
	}

	before := board
	if _, ok := board.Spawn(rng, DefaultFourChance); ok {
		t.Error("Spawn on full board should report failure")
	}
	if board != before {
		t.Error("Spawn on full board should not modify it")
	}
}

func TestSpawnFourChance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	fours := 0
	const rounds = 1000
	for range rounds {
		var board Board
		cell, _ := board.Spawn(rng, 0.10)
		if board[cell.Row][cell.Col] == 4 {
			fours++
		}
	}

	// Loose bounds around the 10% spawn rate.
	if fours < 50 || fours > 200 {
		t.Errorf("got %d fours in %d spawns, expected roughly 100", fours, rounds)
	}
}
