package query

import (
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger routes the debug events of eager operators to l.
// It is not safe to call while queries are being built.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "query").Logger()
}

func logMaterialized(op string, elements int, start time.Time) {
	logger.Debug().
		Str("op", op).
		Int("elements", elements).
		Dur("elapsed", time.Since(start)).
		Msg("eager operator finished")
}
