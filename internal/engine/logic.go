package engine

import "fmt"

// SlideRow slides and merges a single row toward its start.
// Returns a new row of the same length and the score gained from merges.
// Each tile merges at most once per call.
func SlideRow(row []Cell) ([]Cell, int) {
	tiles := make([]Cell, 0, len(row))
	for _, v := range row {
		if v != Empty {
			tiles = append(tiles, v)
		}
	}

	result := make([]Cell, 0, len(row))
	gained := 0
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result = append(result, merged)
			gained += int(merged)
			i += 2
			continue
		}
		result = append(result, tiles[i])
		i++
	}

	for len(result) < len(row) {
		result = append(result, Empty)
	}
	return result, gained
}

// MoveLeft slides all tiles left and merges.
// Returns the new board, score gained, and whether any row changed.
func MoveLeft(board Board) (Board, int, bool) {
	out := make(Board, len(board))
	gained := 0
	moved := false

	for r, row := range board {
		newRow, score := SlideRow(row)
		out[r] = newRow
		gained += score
		if !rowsEqual(row, newRow) {
			moved = true
		}
	}

	return out, gained, moved
}

// MoveRight mirrors the board, slides left, and mirrors back.
func MoveRight(board Board) (Board, int, bool) {
	slid, gained, moved := MoveLeft(board.ReverseRows())
	return slid.ReverseRows(), gained, moved
}

// MoveUp transposes, slides left, and transposes back.
func MoveUp(board Board) (Board, int, bool) {
	slid, gained, moved := MoveLeft(board.Transpose())
	return slid.Transpose(), gained, moved
}

// MoveDown transposes, slides right, and transposes back.
func MoveDown(board Board) (Board, int, bool) {
	slid, gained, moved := MoveRight(board.Transpose())
	return slid.Transpose(), gained, moved
}

// Move performs a move in the given direction.
// An unknown direction is a caller bug and panics.
func Move(board Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return MoveLeft(board)
	case DirRight:
		return MoveRight(board)
	case DirUp:
		return MoveUp(board)
	case DirDown:
		return MoveDown(board)
	default:
		panic(fmt.Sprintf("engine: unknown direction %d", int(dir)))
	}
}

// HasMoves reports whether any move can change the board: an empty cell
// exists, or two horizontally or vertically adjacent tiles are equal.
func HasMoves(board Board) bool {
	size := len(board)
	for r := range size {
		for c := range size {
			v := board[r][c]
			if v == Empty {
				return true
			}
			if c+1 < size && board[r][c+1] == v {
				return true
			}
			if r+1 < size && board[r+1][c] == v {
				return true
			}
		}
	}
	return false
}
