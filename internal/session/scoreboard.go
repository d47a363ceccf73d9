package session

import "github.com/pixeldeck/tictactoe/internal/game"

// Scoreboard tallies finished rounds across a session.
type Scoreboard struct {
	winsX int
	winsO int
	draws int
}

// RecordWin - counts a win for the given mark. Marks that cannot win
// (Empty) are ignored.
func (that *Scoreboard) RecordWin(mark game.Mark) {
	switch mark {
	case game.MarkX:
		that.winsX++
	case game.MarkO:
		that.winsO++
	}
}

func (that *Scoreboard) RecordDraw() {
	that.draws++
}

// Wins - the number of rounds the given mark has won.
func (that *Scoreboard) Wins(mark game.Mark) int {
	switch mark {
	case game.MarkX:
		return that.winsX
	case game.MarkO:
		return that.winsO
	default:
		return 0
	}
}

func (that *Scoreboard) Draws() int {
	return that.draws
}

func (that *Scoreboard) TotalGames() int {
	return that.winsX + that.winsO + that.draws
}

// Reset - zeroes every counter.
func (that *Scoreboard) Reset() {
	*that = Scoreboard{}
}
