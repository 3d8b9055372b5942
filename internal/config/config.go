package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	SeatHuman    = "human"
	SeatComputer = "computer"
)

type Config struct {
	BoardWidth    int    `mapstructure:"BOARD_WIDTH"`
	BoardHeight   int    `mapstructure:"BOARD_HEIGHT"`
	PlayerOne     string `mapstructure:"PLAYER_ONE"`
	PlayerTwo     string `mapstructure:"PLAYER_TWO"`
	BotDifficulty string `mapstructure:"BOT_DIFFICULTY"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	AppEnv        string `mapstructure:"APP_ENV"`
}

var AppConfig *Config

var defaults = map[string]any{
	"BOARD_WIDTH":    7,
	"BOARD_HEIGHT":   6,
	"PLAYER_ONE":     SeatHuman,
	"PLAYER_TWO":     SeatComputer,
	"BOT_DIFFICULTY": "medium",
	"LOG_LEVEL":      "info",
	"APP_ENV":        "production",
}

// LoadConfig reads the settings from the environment, falling back to the
// defaults above. A .env file, if any, must be loaded by the caller first.
func LoadConfig() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.PlayerOne = normalize(cfg.PlayerOne)
	cfg.PlayerTwo = normalize(cfg.PlayerTwo)
	cfg.BotDifficulty = normalize(cfg.BotDifficulty)
	cfg.LogLevel = normalize(cfg.LogLevel)
	cfg.AppEnv = normalize(cfg.AppEnv)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return AppConfig, nil
}

func (c *Config) validate() error {
	if c.BoardWidth < 1 || c.BoardHeight < 1 {
		return fmt.Errorf("invalid board size %dx%d", c.BoardWidth, c.BoardHeight)
	}
	for name, seat := range map[string]string{"PLAYER_ONE": c.PlayerOne, "PLAYER_TWO": c.PlayerTwo} {
		if seat != SeatHuman && seat != SeatComputer {
			return fmt.Errorf("invalid %s %q: want %s or %s", name, seat, SeatHuman, SeatComputer)
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
