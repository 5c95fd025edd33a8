package handlers

import (
	"context"
	"log/slog"
	"runtime"
)

// Devmode tags records with the environment and caller metadata; meant for
// local runs, not production output.
type Devmode struct {
	base slog.Handler
}

func NewDevModeHandler(base slog.Handler) slog.Handler {
	return Devmode{base: base}
}

func (dm Devmode) Enabled(ctx context.Context, level slog.Level) bool {
	return dm.base.Enabled(ctx, level)
}

func (dm Devmode) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(
		slog.String("env", "dev"),
	)

	if pc := record.PC; pc != 0 {
		fs := runtime.CallersFrames([]uintptr{pc})
		f, _ := fs.Next()
		record.AddAttrs(
			slog.Group(
				"caller",
				slog.String("func", f.Function),
				slog.String("file", f.File),
				slog.Int("line", f.Line),
			),
		)
	}

	return dm.base.Handle(ctx, record)
}

func (dm Devmode) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Devmode{base: dm.base.WithAttrs(attrs)}
}

func (dm Devmode) WithGroup(name string) slog.Handler {
	return Devmode{base: dm.base.WithGroup(name)}
}
