package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := NewLogger(cfg)
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("No .env file found")
	}

	playerOne, err := game.ParseSeat(cfg.PlayerOne)
	if err != nil {
		logger.Fatalw("Invalid seat for player one", zap.Error(err))
	}
	playerTwo, err := game.ParseSeat(cfg.PlayerTwo)
	if err != nil {
		logger.Fatalw("Invalid seat for player two", zap.Error(err))
	}

	ctrl, err := game.NewController(cfg.BoardWidth, cfg.BoardHeight,
		game.WithLogger(logger),
		game.WithSeats(playerOne, playerTwo),
		game.WithDepth(DepthForDifficulty(cfg.BotDifficulty)),
	)
	if err != nil {
		logger.Fatalw("Failed to create game", zap.Error(err))
	}

	if err := run(ctrl, os.Stdin, os.Stdout); err != nil {
		logger.Fatalw("Game loop stopped", zap.Error(err))
	}
}

// NewLogger builds the zap logger for the configured environment. Logs go to
// stderr so they stay out of the board on stdout.
func NewLogger(cfg *config.Config) *zap.SugaredLogger {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
