package engine

import "fmt"

// WinTile is the tile value that wins the game.
const WinTile Cell = 2048

// GameState is an immutable snapshot of a game.
// Accessors return copies, so holding a GameState never exposes a board
// that can change underneath the holder.
type GameState struct {
	board Board
	score int
	won   bool
	over  bool
}

// NewGame returns a fresh game with two tiles on an otherwise empty board.
func NewGame(size int, rng Rand) GameState {
	if size < 1 {
		panic(fmt.Sprintf("engine: board size must be positive, got %d", size))
	}

	board := NewBoard(size)
	board, _ = AddRandomTile(board, rng)
	board, _ = AddRandomTile(board, rng)

	return GameState{board: board}
}

// FromBoard builds a state around a copy of board, deriving won and over
// from its contents. won stays true if already set.
func FromBoard(board Board, score int, won bool) GameState {
	b := board.Clone()
	return GameState{
		board: b,
		score: score,
		won:   won || b.Contains(WinTile),
		over:  !HasMoves(b),
	}
}

// ApplyMove returns the state after moving in dir.
// A move that changes nothing returns state itself: no tile spawns, and
// score, won and over are untouched.
func ApplyMove(state GameState, dir Direction, rng Rand) GameState {
	moved, gained, changed := Move(state.board, dir)
	if !changed {
		return state
	}

	board, _ := AddRandomTile(moved, rng)

	return GameState{
		board: board,
		score: state.score + gained,
		won:   state.won || board.Contains(WinTile),
		over:  !HasMoves(board),
	}
}

// Board returns a copy of the board.
func (s GameState) Board() Board {
	return s.board.Clone()
}

// Cells returns the board flattened in row-major order.
func (s GameState) Cells() []Cell {
	cells := make([]Cell, 0, len(s.board)*len(s.board))
	for _, row := range s.board {
		cells = append(cells, row...)
	}
	return cells
}

// Size returns the board dimension.
func (s GameState) Size() int {
	return len(s.board)
}

// Score returns the accumulated merge score.
func (s GameState) Score() int {
	return s.score
}

// Won reports whether a 2048 tile has appeared at any point in the game.
func (s GameState) Won() bool {
	return s.won
}

// Over reports whether no move can change the board.
func (s GameState) Over() bool {
	return s.over
}

// MaxTile returns the highest tile on the board.
func (s GameState) MaxTile() Cell {
	return s.board.MaxTile()
}

// Equal reports whether two states hold the same board, score and flags.
func (s GameState) Equal(other GameState) bool {
	return s.score == other.score &&
		s.won == other.won &&
		s.over == other.over &&
		s.board.Equal(other.board)
}
