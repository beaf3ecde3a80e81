package main

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
	"github.com/revelaction/udclean/config"
)

// newLogger returns a text logger writing to w and, if path is not empty, to
// a rotating log file. The returned closer is nil without a file.
func newLogger(w io.Writer, level, path string) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: config.ParseLevel(level)}

	if path == "" {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	fileLogger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}

	return slog.New(slog.NewTextHandler(io.MultiWriter(w, fileLogger), opts)), fileLogger
}
