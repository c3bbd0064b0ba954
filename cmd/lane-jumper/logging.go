package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "lane-jumper.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a disabled logger unless debug is set
// With debug, JSON lines go to logs/lane-jumper.log, never to the terminal the game draws on
// A log file past maxLogSize is rotated to a timestamped name first
func setupLogging(debug bool) (*os.File, zerolog.Logger) {
	if !debug {
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, zerolog.Nop()
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("lane-jumper-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, zerolog.Nop()
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return f, logger
}
