// Package logging sets up the structured logger used by the command
// line tools. Logs go to stderr as text, so stdout stays free for
// results. Each run gets its own id, so lines from one run can be
// picked out of a shared log.
//
//	logger, err := logging.New("info", os.Stderr)
//	if err != nil { ... }
//	logger.Info("read donor", "file", fname, "len", s.Len())
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Levels lists the names accepted by ParseLevel.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel turns a name like "warn" into a slog.Level.
// Case does not matter. The empty string means warn.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q, want one of %s", name, strings.Join(Levels, ", "))
}

// Logger is a slog.Logger that remembers the id of its run.
type Logger struct {
	*slog.Logger
	RunID string
}

// New returns a text logger writing to w at the named level. Every
// record carries a "run" attribute with a fresh uuid.
func New(level string, w io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(h).With("run", id), RunID: id}, nil
}

// Discard is a logger that throws everything away. Handy in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler), RunID: uuid.NewString()}
}
