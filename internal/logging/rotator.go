package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName = "hostd.log"
	logFilePerm = 0o600
	logDirPerm  = 0o750
)

// RotatingFile is an io.Writer that appends to hostd.log in a directory and
// moves it aside once it grows past maxSize. At most maxBackups old files are kept.
type RotatingFile struct {
	mu         sync.Mutex
	dir        string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewRotatingFile opens (or creates) the log file in dir.
func NewRotatingFile(dir string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}

	r := &RotatingFile{
		dir:        dir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	path := filepath.Join(r.dir, logFileName)
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

// Write implements io.Writer.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}

	current := filepath.Join(r.dir, logFileName)
	backup := filepath.Join(r.dir, logFileName+"."+time.Now().Format("20060102-150405.000"))
	if err := os.Rename(current, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.prune()
	r.size = 0
	return r.open()
}

// prune removes the oldest backups beyond maxBackups.
func (r *RotatingFile) prune() {
	if r.maxBackups <= 0 {
		return
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), logFileName+".") {
			backups = append(backups, entry.Name())
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
	}
}

// Close closes the underlying file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
