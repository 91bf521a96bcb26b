package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when no iconsync.json can be located
	ErrConfigNotFound = errors.New("iconsync.json not found")

	// ErrUnsafeFileName is returned when a remote file name would escape the
	// icon directory
	ErrUnsafeFileName = errors.New("unsafe icon file name")

	// ErrNotRegularFile is returned when a module path exists but is not a
	// regular file
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrCredentialsRequired is returned when no API token is configured
	ErrCredentialsRequired = errors.New(`API credentials required

Provide them via one of:
  * iconsync auth --user <email>  (saves auth.json)
  * ICONSYNC_USER / ICONSYNC_TOKEN env vars
  * --user / --token flags`)
)

// FetchError wraps a failed icon fetch for one project
type FetchError struct {
	ProjectID string
	Version   string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch icons for project %s@%s: %v", e.ProjectID, e.Version, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failed icon module write
type WriteError struct {
	ProjectID string
	IconID    string
	Path      string
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write icon %s of project %s to %s: %v", e.IconID, e.ProjectID, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
