package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig controls log file rotation behavior.
type RotationConfig struct {
	// MaxSizeMB is the maximum size in megabytes before rotation.
	// Zero disables rotation.
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep.
	// Older backups are deleted. Zero keeps no backups.
	MaxBackups int
}

// DefaultRotationConfig returns sensible rotation defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// RotatingWriter is an io.Writer that rotates the underlying file when it
// exceeds a maximum size. Rotated files are renamed with a numeric
// suffix: debug.log.1 is the most recent backup, debug.log.2 the next,
// and so on.
type RotatingWriter struct {
	mu          sync.Mutex
	filePath    string
	maxSizeB    int64
	maxBackups  int
	file        *os.File
	currentSize int64
}

// NewRotatingWriter creates a writer that appends to filePath, rotating
// per config. Parent directories are created as needed.
func NewRotatingWriter(filePath string, config RotationConfig) (*RotatingWriter, error) {
	w := &RotatingWriter{
		filePath:   filePath,
		maxSizeB:   int64(config.MaxSizeMB) * 1024 * 1024,
		maxBackups: config.MaxBackups,
	}

	if err := w.openFile(); err != nil {
		return nil, err
	}
	return w, nil
}

// openFile opens (or creates) the log file for appending and records its
// current size. Caller must hold w.mu or be the constructor.
func (w *RotatingWriter) openFile() error {
	if err := os.MkdirAll(filepath.Dir(w.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(w.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	w.file = file
	w.currentSize = info.Size()
	return nil
}

// Write implements io.Writer. The file is rotated before the write when
// the write would push it past the size limit, so a single entry is
// never split across files.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, fmt.Errorf("rotating writer is closed")
	}

	if w.maxSizeB > 0 && w.currentSize+int64(len(p)) > w.maxSizeB {
		if err := w.rotate(); err != nil {
			// A failed rotation should not lose the log entry.
			fmt.Fprintf(os.Stderr, "warning: log rotation failed: %v\n", err)
		}
	}

	n, err := w.file.Write(p)
	w.currentSize += int64(n)
	return n, err
}

// rotate closes the current file, shifts existing backups, renames the
// file to .1, and opens a fresh file. Caller must hold w.mu.
func (w *RotatingWriter) rotate() error {
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync before rotation: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close before rotation: %w", err)
	}
	w.file = nil

	w.rotateBackups()

	if err := os.Rename(w.filePath, w.backupPath(1)); err != nil {
		// Reopen the original so logging can continue.
		if openErr := w.openFile(); openErr != nil {
			return fmt.Errorf("failed to rename log file and failed to reopen: %v (reopen: %w)", err, openErr)
		}
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	return w.openFile()
}

// rotateBackups shifts backup files up by one number, deleting the
// oldest if it would exceed maxBackups. Caller must hold w.mu.
func (w *RotatingWriter) rotateBackups() {
	if w.maxBackups <= 0 {
		// No backups kept; the rename target must not exist.
		os.Remove(w.backupPath(1))
		return
	}

	os.Remove(w.backupPath(w.maxBackups))

	for i := w.maxBackups - 1; i >= 1; i-- {
		oldPath := w.backupPath(i)
		if _, err := os.Stat(oldPath); err == nil {
			os.Rename(oldPath, w.backupPath(i+1))
		}
	}
}

// backupPath returns the path for the nth backup file.
func (w *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", w.filePath, n)
}

// Sync flushes the current file to disk.
func (w *RotatingWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close closes the underlying file. Subsequent writes fail.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// CurrentSize returns the size in bytes of the active log file.
func (w *RotatingWriter) CurrentSize() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentSize
}
