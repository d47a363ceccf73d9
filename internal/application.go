package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pixeldeck/tictactoe/internal/config"
	"github.com/pixeldeck/tictactoe/internal/session"
	"github.com/pixeldeck/tictactoe/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sess := session.New(conf.Players.NameX, conf.Players.NameO)
	log.Info("Starting session", "session_id", sess.ID, "player_x", sess.PlayerX.Name, "player_o", sess.PlayerO.Name)

	view := console.New(logger, os.Stdin, os.Stdout)
	if err := view.Run(ctx, sess); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Session over",
		"games_played", sess.Score.TotalGames(),
		"draws", sess.Score.Draws(),
	)

	return nil
}
