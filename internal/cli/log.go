// Package cli implements the flis command-line interface.
//
// # Commands
//
//   - solve: compute the leaf function of a graph
//   - render: draw a fully leafed induced subtree as SVG or DOT
//   - enumerate: list the induced subtrees of a graph
//   - classify: group graphs by their leaf function
//
// Graphs come from a named family (--family, --n) or an edge-list file (--file).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and --log-file
// to send log lines to a size-rotated file instead of stderr. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// rotatingFile returns a lumberjack writer for c.File.
func rotatingFile(c LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: c.File,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg and the elapsed time, e.g. "Solved petersen (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
