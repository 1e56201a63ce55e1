package beammpctl

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

var logPath string

// InitLogging creates the per-run log file and redirects the standard
// logger to it. Actions call it only after their preflight checks pass,
// so a refused run leaves no trace on disk. Repeated calls reuse the
// file opened by the first.
func InitLogging() (string, error) {
	if logPath != "" {
		return logPath, nil
	}

	logDir, err := LogDirectory()
	if err != nil {
		return "", err
	}

	logname := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02_15-04-05"))
	p := filepath.Join(logDir, logname)
	logFile, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return "", errors.WithMessage(err, "failed to open log file")
	}

	log.SetOutput(logFile)
	logPath = p

	return p, nil
}

// LogPath returns the path of the current run's log file, or an empty
// string when InitLogging has not run yet.
func LogPath() string {
	return logPath
}

func stateDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WithMessage(err, "failed to get user home dir")
	}

	dir := filepath.Join(homeDir, ".beammpctl")
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		err = os.Mkdir(dir, 0700)
		if err != nil {
			return "", errors.WithMessage(err, "failed to create state directory")
		}
	}

	return dir, nil
}

// LogDirectory is where the tool writes its own run logs.
func LogDirectory() (string, error) {
	dir, err := stateDirectory()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dir, "logs")
	if _, err := os.Stat(logDir); errors.Is(err, fs.ErrNotExist) {
		err = os.Mkdir(logDir, 0700)
		if err != nil {
			return "", errors.WithMessage(err, "failed to create log directory")
		}
	}

	return logDir, nil
}
