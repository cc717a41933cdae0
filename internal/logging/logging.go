// Package logging routes the standard logger to stdout and an optional
// log file, and formats the link and toggle actions the viewer performs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	mu        sync.Mutex
	logFile   *os.File
	sessionID = uuid.NewString()
)

// Init sends log output to stdout and, when logPath is set, to that file.
func Init(logPath string) error {
	return initWriters(logPath, true)
}

// InitQuiet sends log output to logPath only. The interactive view uses it
// because the terminal is owned by the UI. An empty path discards output.
func InitQuiet(logPath string) error {
	return initWriters(logPath, false)
}

func initWriters(logPath string, console bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SessionID identifies this process in action lines.
func SessionID() string {
	return sessionID
}

// LogEvent writes a formatted line to the log.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogAction records a user-triggered action such as opening a link or
// toggling an FAQ entry.
func LogAction(action, target string, err error) {
	log.Println(buildActionMessage(action, target, err))
}

func buildActionMessage(action, target string, err error) string {
	act := strings.ToUpper(strings.TrimSpace(action))
	if act == "" {
		act = "ACTION"
	}
	targetValue := strings.TrimSpace(target)
	if targetValue == "" {
		targetValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", act)}
	parts = append(parts, fmt.Sprintf("target=%s", targetValue))
	parts = append(parts, fmt.Sprintf("session=%s", sessionID))
	if err != nil {
		parts = append(parts, fmt.Sprintf("error=%q", err.Error()))
	}
	return strings.Join(parts, " ")
}
