package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	row, col int
}

// playMoves - applies moves in order, failing the test on any rejection.
func playMoves(t *testing.T, g *Game, moves []move) {
	t.Helper()

	for _, m := range moves {
		require.True(t, g.MakeMove(m.row, m.col), "move (%d,%d) was rejected", m.row, m.col)
	}
}

// drawMoves - fills the whole board without completing a line:
//
//	X O X
//	X O O
//	O X X
var drawMoves = []move{
	{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2},
}

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	g := NewGame()

	// Then: every cell is empty and X moves first
	require.NotNil(t, g)
	require.Equal(t, Board{}, g.Board())
	require.Equal(t, MarkX, g.Turn())

	// Then: no terminal condition holds yet
	_, ok := g.Winner()
	assert.False(t, ok)
	assert.False(t, g.IsBoardFull())
	assert.False(t, g.IsOver())
}

func TestGame_MakeMove(t *testing.T) {
	t.Run("Turn alternation", func(t *testing.T) {
		// Given: a new game
		g := NewGame()

		// When/Then: successful moves strictly alternate the turn, X first
		expected := []Mark{MarkX, MarkO, MarkX, MarkO, MarkX}
		cells := []move{{0, 0}, {1, 1}, {0, 1}, {2, 2}, {1, 0}}

		for i, m := range cells {
			require.Equal(t, expected[i], g.Turn())
			require.True(t, g.MakeMove(m.row, m.col))
		}
	})

	t.Run("Rejects out of range coordinates", func(t *testing.T) {
		// Given: a new game
		g := NewGame()

		before := g.Board()

		// When: moves target coordinates outside [0,2]
		for _, m := range []move{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {-1, -1}, {3, 3}} {
			// Then: each is rejected and nothing changes
			require.False(t, g.MakeMove(m.row, m.col), "move (%d,%d) should be rejected", m.row, m.col)
			require.Equal(t, before, g.Board())
			require.Equal(t, MarkX, g.Turn())
		}
	})

	t.Run("Rejects occupied cell", func(t *testing.T) {
		// Given: a game where X has taken the center
		g := NewGame()
		require.True(t, g.MakeMove(1, 1))

		// When: O targets the same cell
		ok := g.MakeMove(1, 1)

		// Then: the move is rejected, the cell keeps X's mark, the turn stays with O
		require.False(t, ok)
		require.Equal(t, MarkX, g.Board()[1][1])
		require.Equal(t, MarkO, g.Turn())
	})
}

func TestGame_Winner(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		// Given: X completes the top row
		g := NewGame()
		playMoves(t, g, []move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})

		// Then: X is the winner
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, MarkX, winner)
		assert.True(t, g.IsOver())
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: X completes the left column
		g := NewGame()
		playMoves(t, g, []move{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}})

		// Then: X is the winner
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, MarkX, winner)
	})

	t.Run("Diagonal win", func(t *testing.T) {
		// Given: X completes the main diagonal
		g := NewGame()
		playMoves(t, g, []move{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {2, 2}})

		// Then: X is the winner
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, MarkX, winner)
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: X completes the anti-diagonal
		g := NewGame()
		playMoves(t, g, []move{{0, 2}, {0, 0}, {1, 1}, {0, 1}, {2, 0}})

		// Then: X is the winner
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, MarkX, winner)
	})

	t.Run("No premature winner", func(t *testing.T) {
		// Given: two non-winning moves
		g := NewGame()
		playMoves(t, g, []move{{0, 0}, {1, 1}})

		// Then: there is no winner and the game is still on
		_, ok := g.Winner()
		assert.False(t, ok)
		assert.False(t, g.IsOver())
	})

	t.Run("O can win too", func(t *testing.T) {
		// Given: O completes the middle row while X scatters
		g := NewGame()
		playMoves(t, g, []move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {1, 2}})

		// Then: O is the winner
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, MarkO, winner)
	})
}

func TestGame_IsBoardFull(t *testing.T) {
	// Given: a new game
	g := NewGame()

	// Then: the board starts out not full
	require.False(t, g.IsBoardFull())

	// When: nine legal moves fill every cell
	playMoves(t, g, drawMoves)

	// Then: the board is full
	require.True(t, g.IsBoardFull())
}

func TestGame_Draw(t *testing.T) {
	// Given: a full board with no completed line
	g := NewGame()
	playMoves(t, g, drawMoves)

	// Then: no winner, full board, game over
	_, ok := g.Winner()
	assert.False(t, ok)
	assert.True(t, g.IsBoardFull())
	assert.True(t, g.IsOver())
}

func TestGame_BoardSnapshot(t *testing.T) {
	// Given: a game with one move played
	g := NewGame()
	require.True(t, g.MakeMove(0, 0))

	// When: the caller scribbles all over its snapshot
	snapshot := g.Board()
	snapshot[0][0] = MarkO
	snapshot[2][2] = MarkX

	// Then: a fresh snapshot still shows the real state
	fresh := g.Board()
	require.Equal(t, MarkX, fresh[0][0])
	require.Equal(t, Empty, fresh[2][2])
}

func TestGame_Reset(t *testing.T) {
	// Given: a game some moves in
	g := NewGame()
	playMoves(t, g, []move{{0, 0}, {1, 1}, {2, 2}})

	// When: the game is reset
	g.Reset()

	// Then: the state matches a freshly constructed game exactly
	require.Equal(t, NewGame(), g)
	require.Equal(t, Board{}, g.Board())
	require.Equal(t, MarkX, g.Turn())
}

func TestGame_MoveAfterGameOver(t *testing.T) {
	// Given: a game X has already won
	g := NewGame()
	playMoves(t, g, []move{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}})
	require.True(t, g.IsOver())

	// When: another legal placement comes in anyway
	ok := g.MakeMove(2, 2)

	// Then: the permissive contract accepts it without disturbing the outcome
	require.True(t, ok)
	winner, found := g.Winner()
	require.True(t, found)
	assert.Equal(t, MarkX, winner)
}
