package game

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of sliding a board in one direction.
type MoveResult struct {
	Board   Board // board after the slide, before any spawn
	Gained  int   // sum of tile values created by merges
	Changed bool  // whether any cell differs from the input
}

// slideLine compresses and merges a single line toward index 0.
// Each destination cell merges at most once per move: [2,2,2,2] becomes
// [4,4,0,0] and [2,2,4] becomes [4,4,0], never a chained [8].
func slideLine(line [Size]int) (result [Size]int, gained int) {
	write := 0
	lastMerged := -1

	for i := range Size {
		v := line[i]
		if v == 0 {
			continue
		}

		if write > 0 && result[write-1] == v && write-1 != lastMerged {
			result[write-1] = v * 2
			gained += result[write-1]
			lastMerged = write - 1
		} else {
			result[write] = v
			write++
		}
	}

	return result, gained
}

// reverseLine reverses a line.
func reverseLine(line [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	var result Board
	for r := range Size {
		for c := range Size {
			result[r][c] = b[c][r]
		}
	}
	return result
}

// slideLeft slides every row toward column 0.
func slideLeft(b Board) MoveResult {
	res := MoveResult{}
	for r := range Size {
		row, gained := slideLine(b[r])
		res.Board[r] = row
		res.Gained += gained
		if row != b[r] {
			res.Changed = true
		}
	}
	return res
}

// slideRight slides every row toward column Size-1 by reversing, sliding
// left, and reversing back.
func slideRight(b Board) MoveResult {
	res := MoveResult{}
	for r := range Size {
		row, gained := slideLine(reverseLine(b[r]))
		res.Board[r] = reverseLine(row)
		res.Gained += gained
		if res.Board[r] != b[r] {
			res.Changed = true
		}
	}
	return res
}

// Slide applies a directional move and reports the resulting board, the
// score gained from merges, and whether anything moved. Up and Down are
// expressed as transposed Left and Right.
func Slide(b Board, dir Direction) MoveResult {
	switch dir {
	case DirLeft:
		return slideLeft(b)
	case DirRight:
		return slideRight(b)
	case DirUp:
		res := slideLeft(transpose(b))
		res.Board = transpose(res.Board)
		return res
	case DirDown:
		res := slideRight(transpose(b))
		res.Board = transpose(res.Board)
		return res
	default:
		return MoveResult{Board: b}
	}
}
