package bslog

import (
	"log/slog"

	"github.com/vitistack/resolver-shim/pkg/bslog/handlers"
)

var CustomLevelNames = map[slog.Level]string{
	LevelFatal: "FATAL",
}

// BaseReplaceAttr renames custom levels and drops empty string attributes.
func BaseReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		if label, ok := CustomLevelNames[level]; ok {
			a.Value = slog.StringValue(label)
		}
	}

	if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
		return slog.Attr{}
	}

	return a
}

type handlerOption func(base slog.Handler) slog.Handler

func InDevMode() handlerOption {
	return func(base slog.Handler) slog.Handler {
		return handlers.NewDevModeHandler(base)
	}
}
