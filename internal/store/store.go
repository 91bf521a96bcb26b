package store

import (
	"errors"

	"github.com/inovacc/iconsync/internal/model"
)

// ErrRunNotFound is returned by GetRun for unknown ids.
var ErrRunNotFound = errors.New("sync run not found")

// Store defines the history operations used by the app.
type Store interface {
	Ping() error
	RecordRun(run *model.SyncRun) error
	GetRun(id string) (*model.SyncRun, error)
	ListRuns(limit int) ([]model.SyncRun, error)
	Close() error
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (Store, error) {
	return NewBolt(path)
}
