package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
)

func TestNewLogger(t *testing.T) {
	t.Run("Production JSON", func(t *testing.T) {
		var buf bytes.Buffer

		l := newLogger(configpkg.Config{Environement: "production", LogLevel: "warn"}, &buf)
		l.Info().Msg("hidden")
		l.Warn().Msg("shown")

		require.NotContains(t, buf.String(), "hidden")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "shown", line["message"])
		require.Equal(t, "warn", line["level"])
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer

		l := newLogger(configpkg.Config{LogLevel: "loud"}, &buf)
		l.Debug().Msg("hidden")
		l.Info().Msg("shown")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("Development console", func(t *testing.T) {
		var buf bytes.Buffer

		l := newLogger(configpkg.Config{Environement: "development", LogLevel: "error"}, &buf)
		l.Trace().Msg("traced")

		require.Contains(t, buf.String(), "traced")
		require.False(t, json.Valid(buf.Bytes()))
	})
}

func TestOperationLogger(t *testing.T) {
	testCases := []struct {
		name      string
		opErr     error
		wantLevel string
	}{
		{name: "OK", wantLevel: "info"},
		{name: "Rejected", opErr: domain.ErrCustomerNotFound, wantLevel: "info"},
		{name: "Internal", opErr: fmt.Errorf("%w: boom", errorspkg.ErrInternal), wantLevel: "error"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := zerolog.New(&buf)

			var ctxLogger *zerolog.Logger

			op := OperationLogger(logger)("deposit", func(ctx context.Context) error {
				ctxLogger = zerolog.Ctx(ctx)
				return tc.opErr
			})

			err := op(context.Background())
			require.ErrorIs(t, err, tc.opErr)
			require.NotNil(t, ctxLogger)
			require.NotEqual(t, zerolog.Disabled, ctxLogger.GetLevel())

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			require.Equal(t, tc.wantLevel, line["level"])
			require.Equal(t, "deposit", line["operation"])
			require.NotEmpty(t, line["operation_id"])
			require.NotEmpty(t, line["latency"])
		})
	}
}
