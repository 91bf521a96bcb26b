package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/iconsync/internal/encoding"
	"github.com/inovacc/iconsync/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketRuns   = "runs"    // key: <started_at nanos>-<id> -> SyncRun JSON
	boltBucketRunIDs = "run_ids" // key: id -> runs key
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRuns)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRunIDs)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// RecordRun stores run, assigning an id and start time when missing.
// Recording the same id twice replaces the earlier entry.
func (b *Bolt) RecordRun(run *model.SyncRun) error {
	if run == nil {
		return errors.New("run is required")
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	key := runKey(run)

	return b.storage.Update(func(tx *bbolt.Tx) error {
		var (
			runs = tx.Bucket([]byte(boltBucketRuns))
			ids  = tx.Bucket([]byte(boltBucketRunIDs))
		)

		if old := ids.Get([]byte(run.ID)); old != nil {
			if err := runs.Delete(old); err != nil {
				return err
			}
		}

		if err := runs.Put(key, data); err != nil {
			return err
		}

		return ids.Put([]byte(run.ID), key)
	})
}

func (b *Bolt) GetRun(id string) (*model.SyncRun, error) {
	var run *model.SyncRun

	err := b.storage.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket([]byte(boltBucketRunIDs)).Get([]byte(id))
		if key == nil {
			return ErrRunNotFound
		}

		data := tx.Bucket([]byte(boltBucketRuns)).Get(key)
		if data == nil {
			return ErrRunNotFound
		}

		parsed, err := encoding.ParseJSON[model.SyncRun](data)
		if err != nil {
			return err
		}

		run = parsed

		return nil
	})

	return run, err
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (b *Bolt) ListRuns(limit int) ([]model.SyncRun, error) {
	var out []model.SyncRun

	err := b.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(boltBucketRuns)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}

			var run model.SyncRun
			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}

			out = append(out, run)
		}

		return nil
	})

	return out, err
}

// runKey sorts chronologically under bbolt's byte ordering.
func runKey(run *model.SyncRun) []byte {
	return []byte(fmt.Sprintf("%020d-%s", run.StartedAt.UnixNano(), run.ID))
}
