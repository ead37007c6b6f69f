// Package logging builds the slog loggers used by cuid2.
//
// Library packages accept a *slog.Logger and fall back to Nop when none is
// given. The command-line tool builds its logger from configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("generator ready", "length", 25)
//
// Two formats are supported: text for terminals and JSON for log collectors.
package logging
