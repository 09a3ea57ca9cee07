package cli

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

func newLogger(output io.Writer, level slog.Level, noColor bool) *slog.Logger {
	handler := tint.NewHandler(output, &tint.Options{
		Level:      level,
		AddSource:  false,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && !noColor {
				return tint.Attr(9, a)
			}
			return a
		},
	})
	return slog.New(handler)
}
