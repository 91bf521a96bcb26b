package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/iconsync/internal/encoding"
)

// WriteOptions controls how FileWriter treats an existing file.
type WriteOptions struct {
	// Force overwrites an existing file. Without it the file is only
	// created when absent.
	Force bool
}

// DiskWriter writes module files below BaseDir.
type DiskWriter struct {
	BaseDir string
	Logger  *slog.Logger
}

// Resolve maps a stored module path to a filesystem path. Absolute paths
// are returned unchanged.
func (w *DiskWriter) Resolve(p string) string {
	native := filepath.FromSlash(p)
	if filepath.IsAbs(native) {
		return native
	}

	return filepath.Join(w.BaseDir, native)
}

// WriteFile implements FileWriter.
func (w *DiskWriter) WriteFile(p, content string, opts WriteOptions) error {
	full := w.Resolve(p)

	if opts.Force {
		return encoding.WriteFile(full, []byte(content), 0644)
	}

	if err := encoding.EnsureParentDir(full); err != nil {
		return err
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return w.keepExisting(full)
		}

		return fmt.Errorf("failed to create file %s: %w", full, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write file %s: %w", full, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", full, err)
	}

	return nil
}

// keepExisting accepts an existing target only when it is a regular file.
func (w *DiskWriter) keepExisting(full string) error {
	info, err := os.Stat(full)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", full, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", full, ErrNotRegularFile)
	}

	w.logger().Debug("keeping existing file", slog.String("path", full))

	return nil
}

func (w *DiskWriter) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}

	return w.Logger
}
