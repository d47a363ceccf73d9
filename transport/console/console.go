package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pixeldeck/tictactoe/internal/apperror"
	"github.com/pixeldeck/tictactoe/internal/game"
	"github.com/pixeldeck/tictactoe/internal/session"
)

// View - the interactive console front end. It only ever talks to the
// engine through snapshots and the public move API.
type View struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *View {
	return &View{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run - drives a whole session: rounds of turns, result reporting, and the
// play-again prompt. A quit (EOF or "q") at any prompt ends the session
// cleanly; context cancellation is honored between prompts.
func (that *View) Run(ctx context.Context, sess *session.Session) error {
	log := that.logger.With("method", "Run", "session_id", sess.ID)

	fmt.Fprintln(that.out, "Tic-Tac-Toe")
	fmt.Fprintf(that.out, "%s plays X, %s plays O. X starts. Enter q to quit.\n", sess.PlayerX.Name, sess.PlayerO.Name)

	for {
		if err := that.playRound(ctx, sess); err != nil {
			if errors.Is(err, apperror.ErrPlayerQuit) || errors.Is(err, context.Canceled) {
				log.Info("session ended early", "games_played", sess.Score.TotalGames())
				return nil
			}

			return fmt.Errorf("round aborted: %w", err)
		}

		sess.RecordResult()
		that.printBoard(sess.Game.Board())
		that.printResult(sess)
		that.printScore(sess)

		again, err := that.promptPlayAgain()
		if err != nil && !errors.Is(err, apperror.ErrPlayerQuit) {
			return fmt.Errorf("play-again prompt: %w", err)
		}

		if err != nil || !again {
			log.Info("session finished", "games_played", sess.Score.TotalGames())
			return nil
		}

		sess.ResetGame()
	}
}

// playRound - prompts for moves until the round is over. Rejected moves and
// unparseable lines re-prompt instead of failing.
func (that *View) playRound(ctx context.Context, sess *session.Session) error {
	for sess.IsActive() {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.printBoard(sess.Game.Board())

		player := sess.CurrentPlayer()
		fmt.Fprintf(that.out, "%s (%s), your turn.\n", player.Name, player.Mark)

		row, err := that.promptCoordinate("Enter row (0-2): ")
		if errors.Is(err, apperror.ErrMalformedInput) {
			fmt.Fprintln(that.out, "That is not a number, try again.")
			continue
		}
		if err != nil {
			return err
		}

		col, err := that.promptCoordinate("Enter column (0-2): ")
		if errors.Is(err, apperror.ErrMalformedInput) {
			fmt.Fprintln(that.out, "That is not a number, try again.")
			continue
		}
		if err != nil {
			return err
		}

		if !sess.Game.MakeMove(row, col) {
			fmt.Fprintln(that.out, "Invalid move! Try again.")
		}
	}

	return nil
}

// promptCoordinate - reads one line and parses it as an integer. The engine
// does the range checking, the view only guards against non-numeric text.
func (that *View) promptCoordinate(prompt string) (int, error) {
	fmt.Fprint(that.out, prompt)

	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	return value, nil
}

func (that *View) promptPlayAgain() (bool, error) {
	for {
		fmt.Fprint(that.out, "Play again? [y/n]: ")

		line, err := that.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// readLine - next trimmed input line. EOF and an explicit "q" both mean the
// player is done.
func (that *View) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return "", apperror.ErrPlayerQuit
	}

	line := strings.TrimSpace(that.in.Text())
	if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
		return "", apperror.ErrPlayerQuit
	}

	return line, nil
}

func (that *View) printBoard(board game.Board) {
	fmt.Fprintln(that.out)
	for i, row := range board {
		fmt.Fprintf(that.out, " %s | %s | %s\n", row[0], row[1], row[2])
		if i < game.BoardSize-1 {
			fmt.Fprintln(that.out, "---|---|---")
		}
	}
	fmt.Fprintln(that.out)
}

func (that *View) printResult(sess *session.Session) {
	if winner, ok := sess.Game.Winner(); ok {
		player := sess.PlayerFor(winner)
		fmt.Fprintf(that.out, "%s (%s) wins!\n", player.Name, player.Mark)
		return
	}

	fmt.Fprintln(that.out, "It's a tie!")
}

func (that *View) printScore(sess *session.Session) {
	fmt.Fprintf(that.out, "Score: %s %d - %d %s, draws %d\n",
		sess.PlayerX.Name, sess.Score.Wins(game.MarkX),
		sess.Score.Wins(game.MarkO), sess.PlayerO.Name,
		sess.Score.Draws(),
	)
}
