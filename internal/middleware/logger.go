// Package middleware provides logging around menu operations.
package middleware

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
)

// Operation is a single menu action run to completion.
type Operation func(ctx context.Context) error

// Middleware decorates a named operation.
type Middleware func(name string, next Operation) Operation

// GetLogger returns logger writing to stderr, stdout is reserved for the menu.
func GetLogger(config configpkg.Config) zerolog.Logger {
	return newLogger(config, os.Stderr)
}

func newLogger(config configpkg.Config, output io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logLevel, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel // default to INFO
	}

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// OperationLogger logs every operation with its id, latency and outcome.
func OperationLogger(logger zerolog.Logger) Middleware {
	return func(name string, next Operation) Operation {
		return func(ctx context.Context) error {
			start := time.Now()

			l := logger.With().
				Str("operation_id", uuid.NewString()).
				Str("operation", name).
				Logger()

			err := next(l.WithContext(ctx))

			var logEvent *zerolog.Event
			switch {
			case errors.Is(err, errorspkg.ErrInternal):
				logEvent = l.Error().Err(err)
			case err != nil:
				logEvent = l.Info().Str("rejected", err.Error())
			default:
				logEvent = l.Info()
			}

			logEvent.
				Str("latency", time.Since(start).String()).
				Msg("operation finished")

			return err
		}
	}
}
