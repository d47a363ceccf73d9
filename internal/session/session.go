package session

import (
	"github.com/google/uuid"

	"github.com/pixeldeck/tictactoe/internal/game"
)

// Player pairs a display name with the mark that player puts on the board.
type Player struct {
	Name string
	Mark game.Mark
}

// Session - a run of consecutive rounds between the same two players.
// Player one always takes X, so the engine's turn mark identifies whose
// move it is. The scoreboard survives round resets.
type Session struct {
	ID      string
	PlayerX Player
	PlayerO Player
	Game    *game.Game
	Score   Scoreboard
}

// New - starts a session between the two named players with a fresh game.
func New(nameX, nameO string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		PlayerX: Player{Name: nameX, Mark: game.MarkX},
		PlayerO: Player{Name: nameO, Mark: game.MarkO},
		Game:    game.NewGame(),
	}
}

// CurrentPlayer - the player who owns the mark that moves next.
func (that *Session) CurrentPlayer() Player {
	if that.Game.Turn() == game.MarkX {
		return that.PlayerX
	}
	return that.PlayerO
}

// PlayerFor - maps a mark back to its player. The empty mark maps to a
// zero Player.
func (that *Session) PlayerFor(mark game.Mark) Player {
	switch mark {
	case game.MarkX:
		return that.PlayerX
	case game.MarkO:
		return that.PlayerO
	default:
		return Player{}
	}
}

// IsActive - reports whether the current round is still being played.
func (that *Session) IsActive() bool {
	return !that.Game.IsOver()
}

// RecordResult - folds the finished round into the scoreboard. Calling it
// while the round is still in progress records nothing.
func (that *Session) RecordResult() {
	if that.IsActive() {
		return
	}

	if winner, ok := that.Game.Winner(); ok {
		that.Score.RecordWin(winner)
		return
	}

	that.Score.RecordDraw()
}

// ResetGame - starts the next round. Scores are kept.
func (that *Session) ResetGame() {
	that.Game.Reset()
}
