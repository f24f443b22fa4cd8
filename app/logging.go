package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	LogDir     = "logs"
	maxLogSize = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to logs/<fileName> when debug is set
// Otherwise log output is discarded so the terminal stays clean
// An existing file above maxLogSize is rotated to a timestamped name
func SetupLogging(debug bool, fileName string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, fileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("%s-%s.log", base(fileName), time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== %s started, pid %d ===", base(fileName), os.Getpid())
	return f
}

func base(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
