package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		state := NewGame(4, NewRand(seed))

		require.Equal(t, 4, state.Size())
		assert.Equal(t, 2, state.Board().TileCount())
		assert.Zero(t, state.Score())
		assert.False(t, state.Won())
		assert.False(t, state.Over())

		for _, v := range state.Cells() {
			if v != Empty {
				assert.Contains(t, []Cell{2, 4}, v)
			}
		}
	}
}

func TestNewGameSizes(t *testing.T) {
	for _, size := range []int{3, 4, 5, 6, 8} {
		state := NewGame(size, NewRand(1))
		assert.Equal(t, size, state.Size())
		assert.Len(t, state.Cells(), size*size)
	}
}

func TestNewGameInvalidSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewGame(0, NewRand(1)) })
}

func TestDeterministicNewGame(t *testing.T) {
	a := NewGame(4, NewRand(12345))
	b := NewGame(4, NewRand(12345))

	assert.True(t, a.Board().Equal(b.Board()), "same seed should produce same initial board:\n%v\nvs\n%v", a.Board(), b.Board())
}

// A no-op move returns the very same state value, sharing its board; the
// state is immutable so identity is safe to keep.
func TestApplyMoveNoOpReturnsSameState(t *testing.T) {
	state := FromBoard(Board{
		{4, 2, 0},
		{8, 0, 0},
		{0, 0, 0},
	}, 36, false)

	next := ApplyMove(state, DirLeft, forbiddenRand{t})

	assert.Equal(t, state, next)
	assert.Same(t, &state.board[0][0], &next.board[0][0])
	assert.Equal(t, state.Board().TileCount(), next.Board().TileCount())
	assert.Equal(t, 36, next.Score())
	assert.True(t, state.Equal(next))
}

func TestApplyMoveSpawnsAndScores(t *testing.T) {
	state := FromBoard(Board{
		{2, 2, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, 0, false)

	next := ApplyMove(state, DirLeft, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	want := Board{
		{4, 2, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	assert.True(t, next.Board().Equal(want), "got\n%v", next.Board())
	assert.Equal(t, 4, next.Score())
	assert.False(t, next.Won())
	assert.False(t, next.Over())
	assert.False(t, state.Equal(next))

	// The input state is untouched.
	assert.True(t, state.Board().Equal(Board{{2, 2, 0}, {0, 0, 0}, {0, 0, 0}}))
	assert.Zero(t, state.Score())
}

func TestApplyMoveDetectsWin(t *testing.T) {
	state := FromBoard(Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 5000, false)
	require.False(t, state.Won())

	next := ApplyMove(state, DirLeft, NewRand(1))

	assert.True(t, next.Won())
	assert.Equal(t, 5000+2048, next.Score())
	assert.Equal(t, WinTile, next.MaxTile())
}

func TestWonIsSticky(t *testing.T) {
	state := FromBoard(Board{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 4},
	}, 20000, true)
	require.True(t, state.Won())

	rng := NewRand(5)
	for i := 0; i < 20 && !state.Over(); i++ {
		state = ApplyMove(state, Directions[i%len(Directions)], rng)
		assert.True(t, state.Won(), "won must never revert to false")
	}
}

func TestApplyMoveDetectsGameOver(t *testing.T) {
	state := FromBoard(Board{
		{2, 4},
		{0, 8},
	}, 0, false)

	next := ApplyMove(state, DirLeft, &scriptedRand{ints: []int{0}, floats: []float64{0.5}})

	assert.True(t, next.Board().Equal(Board{{2, 4}, {8, 2}}), "got\n%v", next.Board())
	assert.True(t, next.Over())

	for _, dir := range Directions {
		assert.Equal(t, next, ApplyMove(next, dir, forbiddenRand{t}), "no move should change a finished board (%s)", dir)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := NewRand(seed)
		state := NewGame(4, rng)

		for i := 0; i < 400 && !state.Over(); i++ {
			dir := Directions[rng.Intn(len(Directions))]
			next := ApplyMove(state, dir, rng)

			require.GreaterOrEqual(t, next.Score(), state.Score())
			if next.Board().Equal(state.Board()) {
				require.Equal(t, state, next)
			} else {
				require.LessOrEqual(t, next.Board().TileCount(), state.Board().TileCount()+1)
			}
			state = next
		}
	}
}

func TestStateAccessorsReturnCopies(t *testing.T) {
	state := FromBoard(Board{
		{2, 4},
		{8, 0},
	}, 12, false)

	b := state.Board()
	b[0][0] = 1024
	cells := state.Cells()
	cells[1] = 1024

	assert.Equal(t, []Cell{2, 4, 8, 0}, state.Cells())
	assert.Equal(t, Cell(8), state.MaxTile())
}

func TestFromBoardDerivesFlags(t *testing.T) {
	over := FromBoard(Board{{2, 4}, {4, 2}}, 0, false)
	assert.True(t, over.Over())
	assert.False(t, over.Won())

	won := FromBoard(Board{{2048, 0}, {0, 0}}, 0, false)
	assert.True(t, won.Won())
	assert.False(t, won.Over())

	src := Board{{2, 0}, {0, 0}}
	state := FromBoard(src, 0, false)
	src[0][0] = 4
	assert.Equal(t, Cell(2), state.Cells()[0], "FromBoard must copy its input")
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"D", DirDown},
		{" left ", DirLeft},
		{"r", DirRight},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrInvalidDirection))
}
