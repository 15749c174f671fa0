// Package lock keeps a single runlog session attached to a data directory.
//
// The run store has exactly one writer. A second session started against the
// same data directory fails fast instead of waiting on the first one.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// FileName is the lock file created inside the data directory.
const FileName = "runlog.lock"

// ErrAlreadyRunning is returned when another session holds the lock.
var ErrAlreadyRunning = errors.New("another runlog session is already running")

// FileLock provides exclusive file-based locking using flock.
type FileLock struct {
	path string
	file *os.File
}

// New creates a lock for the data directory dir.
func New(dir string) *FileLock {
	return &FileLock{path: filepath.Join(dir, FileName)}
}

// Path returns the lock file location.
func (l *FileLock) Path() string {
	return l.path
}

// TryLock acquires the lock without blocking and records the holder's pid.
// The lock file is created if it doesn't exist.
func (l *FileLock) TryLock() error {
	if l.file != nil {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			if pid := readPID(l.path); pid > 0 {
				return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
			}
			return ErrAlreadyRunning
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	l.file = f

	// Best effort, the flock is what matters
	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	return nil
}

// Unlock releases the lock and closes the file.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		l.file = nil
		return err
	}

	err := l.file.Close()
	l.file = nil
	return err
}

func readPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
