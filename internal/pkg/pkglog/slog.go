package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const serviceName = "parserconfig"

// Log output formats accepted by InitLogging.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Options controls the default logger built by InitLogging.
type Options struct {
	Level  slog.Level
	Format string
	Output io.Writer
}

// InitLogging configures the default slog logger for the application.
//
// Keys are normalized to make logs easier to query ("ts", "severity", "file").
// An empty Format means JSON and a nil Output means stderr.
func InitLogging(opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       opts.Level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	case FormatText:
		handler = slog.NewTextHandler(out, handlerOpts)
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}

	slog.SetDefault(slog.New(&contextHandler{Handler: handler}))

	return nil
}

// ParseLevel converts a level name such as "debug" or "WARN" into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		if src, ok := a.Value.Any().(*slog.Source); ok {
			if strings.Contains(src.File, "/internal/") {
				relPath := filepath.Join("internal", strings.SplitAfter(src.File, "/internal/")[1])
				return slog.Attr{
					Key:   "file",
					Value: slog.StringValue(fmt.Sprintf("%s:%d", relPath, src.Line)),
				}
			}
			return slog.Attr{}
		}
	}
	return a
}

type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetRunID(ctx); id != "" {
		r.AddAttrs(slog.String("run_id", id))
	}
	r.AddAttrs(slog.String("service", serviceName))

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
