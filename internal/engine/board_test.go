package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed Intn and Float64 results.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// forbiddenRand fails the test if a tile spawn is attempted.
type forbiddenRand struct{ t *testing.T }

func (f forbiddenRand) Intn(int) int {
	f.t.Fatal("unexpected tile spawn")
	return 0
}

func (f forbiddenRand) Float64() float64 {
	f.t.Fatal("unexpected tile spawn")
	return 0
}

func TestNewBoard(t *testing.T) {
	for _, size := range []int{1, 3, 4, 6} {
		b := NewBoard(size)
		require.Len(t, b, size)
		for _, row := range b {
			require.Len(t, row, size)
		}
		assert.Zero(t, b.TileCount())
		assert.Len(t, b.EmptyCells(), size*size)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Board{
		{2, 0},
		{0, 4},
	}
	c := b.Clone()
	c[0][0] = 8

	assert.Equal(t, Cell(2), b[0][0])
	assert.True(t, b.Equal(Board{{2, 0}, {0, 4}}))
}

func TestTranspose(t *testing.T) {
	b := Board{
		{2, 4, 8},
		{0, 16, 0},
		{32, 0, 64},
	}
	want := Board{
		{2, 0, 32},
		{4, 16, 0},
		{8, 0, 64},
	}
	assert.True(t, b.Transpose().Equal(want), "got\n%v", b.Transpose())
}

func TestReverseRows(t *testing.T) {
	b := Board{
		{2, 4, 0},
		{0, 0, 8},
		{16, 0, 32},
	}
	want := Board{
		{0, 4, 2},
		{8, 0, 0},
		{32, 0, 16},
	}
	assert.True(t, b.ReverseRows().Equal(want), "got\n%v", b.ReverseRows())
}

func TestTransposeAndReverseAreInvolutions(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 200; i++ {
		b := randomBoard(rng, 1+i%6, 0.3)
		snapshot := b.Clone()

		assert.True(t, b.Transpose().Transpose().Equal(b))
		assert.True(t, b.ReverseRows().ReverseRows().Equal(b))
		require.True(t, b.Equal(snapshot), "helpers must not modify the input")
	}
}

func TestAddRandomTileFullBoard(t *testing.T) {
	b := Board{
		{2, 4},
		{8, 16},
	}

	out, placed := AddRandomTile(b, forbiddenRand{t})

	assert.False(t, placed)
	assert.True(t, out.Equal(b))
}

func TestAddRandomTilePlacement(t *testing.T) {
	b := Board{
		{2, 0, 0},
		{0, 4, 0},
		{0, 0, 8},
	}
	original := b.Clone()

	// Empty cells in row-major order: (0,1) (0,2) (1,0) (1,2) (2,0) (2,1).
	out, placed := AddRandomTile(b, &scriptedRand{ints: []int{2}, floats: []float64{0.95}})

	require.True(t, placed)
	assert.Equal(t, Cell(4), out[1][0])
	assert.Equal(t, 4, out.TileCount())
	assert.True(t, b.Equal(original), "input board must be untouched")

	out, placed = AddRandomTile(b, &scriptedRand{ints: []int{5}, floats: []float64{0.1}})
	require.True(t, placed)
	assert.Equal(t, Cell(2), out[2][1])
}

func TestAddRandomTileDistribution(t *testing.T) {
	rng := NewRand(2048)
	fours := 0
	const trials = 20000

	for i := 0; i < trials; i++ {
		out, placed := AddRandomTile(NewBoard(4), rng)
		require.True(t, placed)
		switch v := out.MaxTile(); v {
		case 2:
		case 4:
			fours++
		default:
			t.Fatalf("spawned unexpected tile %d", v)
		}
	}

	ratio := float64(fours) / trials
	assert.InDelta(t, 0.1, ratio, 0.02)
}

func TestBoardHelpers(t *testing.T) {
	b := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	assert.Equal(t, 4, b.Size())
	assert.Len(t, b.EmptyCells(), 8)
	assert.Equal(t, 8, b.TileCount())
	assert.Equal(t, Cell(2048), b.MaxTile())
	assert.True(t, b.Contains(WinTile))
	assert.False(t, b.Contains(4))
	assert.False(t, b.Equal(NewBoard(4)))
	assert.False(t, b.Equal(NewBoard(3)))
}

func TestBoardString(t *testing.T) {
	b := Board{
		{2, 0},
		{0, 1024},
	}
	assert.Equal(t, "   2    .\n   . 1024", b.String())
}
