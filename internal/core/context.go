package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/iconsync/internal/api"
	"github.com/inovacc/iconsync/internal/codegen"
	"github.com/inovacc/iconsync/internal/model"
)

// TimeoutSync bounds a whole sync-icons run when the caller sets no deadline.
const TimeoutSync = 5 * time.Minute

// WithTimeoutFrom creates a context with timeout derived from parent context.
func WithTimeoutFrom(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = TimeoutSync
	}

	return context.WithTimeout(parent, d)
}

// IconFetcher fetches the icon bundles of a project at a version range.
type IconFetcher interface {
	ProjectIcons(ctx context.Context, projectID, versionRange string) (*api.ProjectIconsResponse, error)
}

// ConfigStore persists the project configuration. Saves must be
// atomic-or-fail.
type ConfigStore interface {
	SaveConfig(cfg *model.Config) error
}

// FileWriter writes module files. With Force unset an existing file is left
// untouched and no error is returned.
type FileWriter interface {
	WriteFile(path, content string, opts WriteOptions) error
}

// Recorder stores a ledger entry for each successful sync.
type Recorder interface {
	RecordRun(run *model.SyncRun) error
}

// Converter rewrites a module for the untyped target language.
type Converter func(fileName, module string) (string, string, error)

// Formatter prepares module text for the file at filePath.
type Formatter func(module, filePath string) string

// SyncContext bundles everything a sync needs. Nothing is read from
// package-level state.
type SyncContext struct {
	API      IconFetcher
	Config   *model.Config
	Store    ConfigStore
	Writer   FileWriter
	Convert  Converter
	Format   Formatter
	Recorder Recorder
	Logger   *slog.Logger
}

func (sc *SyncContext) logger() *slog.Logger {
	if sc.Logger == nil {
		return slog.Default()
	}

	return sc.Logger
}

func (sc *SyncContext) converter() Converter {
	if sc.Convert == nil {
		return codegen.ConvertTsxToJsx
	}

	return sc.Convert
}

func (sc *SyncContext) formatter() Formatter {
	if sc.Format == nil {
		return codegen.FormatAsLocal
	}

	return sc.Format
}
