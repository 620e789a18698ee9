package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"pkt.systems/mdpdf"
)

// newLogger builds the named "mdpdf" logger writing to w. It uses the go-logger
// handlers and level names, but glog.NewLogger always writes to os.Stdout,
// which carries the PDF and outline streams, so the handler is built here
// over w.
func newLogger(w io.Writer, level, format string) (mdpdf.Logger, error) {
	lvl := slog.LevelInfo
	if strings.TrimSpace(level) != "" {
		var ok bool
		if lvl, ok = parseLevel(level); !ok {
			return nil, fmt.Errorf("logging: unsupported level %q", level)
		}
	}
	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: replaceAttr}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", glog.LoggerTypeConsole:
		handler = slog.NewTextHandler(w, opts)
	case glog.LoggerTypeJSON:
		handler = slog.NewJSONHandler(w, opts)
	case glog.LoggerTypePretty:
		handler = glog.NewColorConsoleHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", format)
	}
	return slog.New(handler).With("logger", "mdpdf"), nil
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case glog.Trace:
		return glog.LevelTrace, true
	case glog.Debug:
		return slog.LevelDebug, true
	case glog.Info:
		return slog.LevelInfo, true
	case glog.Warn, "WARNING":
		return slog.LevelWarn, true
	case glog.Error:
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// replaceAttr matches go-logger's record layout: "ts" for the time key and
// lower-case level names, including trace.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		label, exists := glog.CustomLevels[level]
		if !exists {
			label = level.String()
		}
		a.Value = slog.StringValue(strings.ToLower(label))
	}
	return a
}
