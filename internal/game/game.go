package game

// Mark is the content of a single cell: empty, or one of the two player symbols.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Other - returns the opposing mark. Empty has no opponent and maps to itself.
func (that Mark) Other() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// BoardSize is fixed for the lifetime of a game.
const BoardSize = 3

// Board is the 3x3 grid, indexed [row][col]. Being an array type it
// copies by value, which is what the snapshot accessor relies on.
type Board [BoardSize][BoardSize]Mark

// winLines - every line that decides a game, scanned in a fixed order:
// the three rows, the three columns, the main diagonal, the anti-diagonal.
var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Game holds the full state of one round: the grid and whose turn it is.
// A Game instance is not safe for concurrent use; a host that shares one
// across goroutines must serialize access itself.
type Game struct {
	board Board
	turn  Mark
}

// NewGame - creates a game with an empty board and X to move.
func NewGame() *Game {
	return &Game{
		board: Board{},
		turn:  MarkX,
	}
}

// MakeMove - places the current player's mark at (row, col) and passes the
// turn. It reports false and changes nothing when a coordinate is outside
// the board or the cell is already taken; out-of-range and occupied moves
// are routine interactive input, not errors. There is no guard against
// moving after the game is decided, callers check IsOver first.
func (that *Game) MakeMove(row, col int) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}

	if that.board[row][col] != Empty {
		return false
	}

	that.board[row][col] = that.turn
	that.turn = that.turn.Other()

	return true
}

// Winner - scans the winLines in order and reports the first completed
// line's mark. The second result is false when no line is complete.
func (that *Game) Winner() (Mark, bool) {
	for _, line := range winLines {
		a := that.board[line[0][0]][line[0][1]]
		b := that.board[line[1][0]][line[1][1]]
		c := that.board[line[2][0]][line[2][1]]

		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// IsBoardFull - reports whether every cell holds a mark.
func (that *Game) IsBoardFull() bool {
	for _, row := range that.board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// IsOver - reports whether the game is decided or drawn. Recomputed from
// the board on every call.
func (that *Game) IsOver() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return that.IsBoardFull()
}

// Board - returns an independent snapshot of the grid. Mutating the
// returned value never touches the game's own board.
func (that *Game) Board() Board {
	return that.board
}

// Turn - returns the mark that moves next.
func (that *Game) Turn() Mark {
	return that.turn
}

// Reset - restores the initial state: empty board, X to move.
func (that *Game) Reset() {
	that.board = Board{}
	that.turn = MarkX
}
