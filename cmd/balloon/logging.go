package main

import (
	"io"
	"log"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir        = "logs"
	logFileName   = "balloon.log"
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// setupLogging routes logs for a terminal session, where stderr belongs to
// the screen. Without debug everything is discarded. With debug, logs go to
// logs/balloon.log as JSON and roll over past maxLogSizeMB. The returned
// writer is nil when logging is off.
func setupLogging(debug bool) *lumberjack.Logger {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		LocalTime:  true,
	}
	log.SetOutput(w)
	return w
}

// newLogger builds the structured logger on top of w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).With("component", "balloon")
}
