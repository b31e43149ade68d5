package logger

import (
	"io"
	"time"

	"grandhotel/config"
	"grandhotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init points the global logger at out. Production writes JSON lines tagged with the app
// name; every other environment gets the console format. The level comes from
// SERVER_LOG_LEVEL, or fallback when that is unset or unknown.
func Init(cfg *config.Config, out io.Writer, fallback zerolog.Level) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var w io.Writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	if cfg.Server.Env == constant.ServerEnvProduction {
		w = out
	}

	ctx := zerolog.New(w).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("service", cfg.App.Name)
	}

	log.Logger = ctx.Logger()

	level := Level(cfg.Server.LogLevel, fallback)
	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Str("env", cfg.Server.Env).Msg("logger initialized")
}

// Level parses raw, returning fallback when it is empty or not a zerolog level.
func Level(raw string, fallback zerolog.Level) zerolog.Level {
	if raw == "" {
		return fallback
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return fallback
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
