package commands

import (
	"github.com/rs/zerolog"

	"github.com/erraggy/flexschema/parser"
)

// zerologAdapter routes library log calls to zerolog. Attributes are
// slog-style key/value pairs.
type zerologAdapter struct {
	l zerolog.Logger
}

// newParserLogger adapts l to parser.Logger.
func newParserLogger(l zerolog.Logger) parser.Logger {
	return zerologAdapter{l: l}
}

func (z zerologAdapter) Debug(msg string, attrs ...any) { z.l.Debug().Fields(attrs).Msg(msg) }

func (z zerologAdapter) Info(msg string, attrs ...any) { z.l.Info().Fields(attrs).Msg(msg) }

func (z zerologAdapter) Warn(msg string, attrs ...any) { z.l.Warn().Fields(attrs).Msg(msg) }

func (z zerologAdapter) Error(msg string, attrs ...any) { z.l.Error().Fields(attrs).Msg(msg) }

func (z zerologAdapter) With(attrs ...any) parser.Logger {
	return zerologAdapter{l: z.l.With().Fields(attrs).Logger()}
}
