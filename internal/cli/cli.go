// Package cli holds the environment handling shared by the commands.
package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read by the commands. Flags override them.
const (
	EnvDepth    = "CHESSBALL_DEPTH"
	EnvOutDir   = "CHESSBALL_OUT_DIR"
	EnvLogLevel = "CHESSBALL_LOG_LEVEL"
)

// Setup loads a .env file if there is one and configures the global logger.
func Setup() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level, err := zerolog.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		log.Warn().Err(err).Msg("bad log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// GetEnv returns the value of key, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt is GetEnv for integers. Values that do not parse fall back to defaultValue.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

// Depth resolves a search depth. A non-negative flag value wins, then a
// non-negative CHESSBALL_DEPTH, then fallback. Depth 0 is a valid request.
func Depth(flagValue, fallback int) int {
	if flagValue >= 0 {
		return flagValue
	}
	if d := GetEnvAsInt(EnvDepth, -1); d >= 0 {
		return d
	}
	return fallback
}
