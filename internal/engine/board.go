// Package engine implements the 2048 game-state transition rules.
//
// Everything here is a pure function over immutable values: a Board goes in,
// a new Board (or GameState) comes out, and the input is never modified.
// The only non-determinism is tile spawning, which draws from an injected Rand.
package engine

import (
	"strconv"
	"strings"
)

// Cell holds a tile value. Zero means the cell is empty.
type Cell int

// Empty is the value of a cell without a tile.
const Empty Cell = 0

// Board is a square, row-major grid of cells.
type Board [][]Cell

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// NewBoard returns a size x size board with every cell empty.
func NewBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]Cell, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy that shares no rows with b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// Transpose returns the board with rows and columns swapped.
// The board must be square and have at least one row.
func (b Board) Transpose() Board {
	cols := len(b[0])
	out := make(Board, cols)
	for c := range cols {
		out[c] = make([]Cell, len(b))
		for r := range b {
			out[c][r] = b[r][c]
		}
	}
	return out
}

// ReverseRows mirrors every row left to right.
func (b Board) ReverseRows() Board {
	out := make(Board, len(b))
	for r, row := range b {
		rev := make([]Cell, len(row))
		for i, v := range row {
			rev[len(row)-1-i] = v
		}
		out[r] = rev
	}
	return out
}

// Equal reports whether both boards hold the same cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if !rowsEqual(b[r], other[r]) {
			return false
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Coord {
	var cells []Coord
	for r, row := range b {
		for c, v := range row {
			if v == Empty {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func (b Board) TileCount() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() Cell {
	var best Cell
	for _, row := range b {
		for _, v := range row {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// Contains reports whether any cell holds v.
func (b Board) Contains(v Cell) bool {
	for _, row := range b {
		for _, cell := range row {
			if cell == v {
				return true
			}
		}
	}
	return false
}

// String renders the board as right-aligned columns, "." for empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(int(b.MaxTile())))
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if v != Empty {
				s = strconv.Itoa(int(v))
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// AddRandomTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// It returns a new board and true, or the original board and false when
// there is no empty cell.
func AddRandomTile(b Board, rng Rand) (Board, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, false
	}

	pick := empty[rng.Intn(len(empty))]
	tile := Cell(2)
	if rng.Float64() >= spawnTwoProbability {
		tile = 4
	}

	out := b.Clone()
	out[pick.Row][pick.Col] = tile
	return out, true
}

func rowsEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
