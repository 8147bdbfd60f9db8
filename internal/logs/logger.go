package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const logFileName = "jotter.log"

var (
	Logger  = log.New(io.Discard, "[jotter] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at jotter.log inside logDir. Until it is called
// log output is discarded, so library code and tests can log freely.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		logDir = "."
	}

	logPath := filepath.Join(logDir, logFileName)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, "[jotter] ", log.LstdFlags|log.Lshortfile)
	Logger.Printf("Logging to %s", logPath)

	return nil
}

// SetOutput redirects the logger, mainly for tests that want to inspect output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	Logger = log.New(w, "[jotter] ", log.LstdFlags|log.Lshortfile)
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = log.New(io.Discard, "[jotter] ", log.LstdFlags|log.Lshortfile)
		return err
	}
	return nil
}
