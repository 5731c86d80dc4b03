// Package jsonstore persists a collection as a single JSON array document.
// Every mutation rewrites the whole document through a temp-file rename, so
// a crash mid-write never leaves a truncated collection behind. Adequate for
// the record counts of a single-location shop; not a design for high write
// volume.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"barber-booking/internal/pkg/errs"
)

// Collection owns its backing file exclusively. Mutations are serialized by
// an in-process mutex (single logical writer); reads go straight to the file
// and are safe concurrently with writers because the rename is atomic.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create store directory")
	}

	c := &Collection[T]{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.write(nil); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errs.Wrap(err, "failed to stat store file")
	}
	return c, nil
}

// Load reads the full record set.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read store file")
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode store file")
	}
	return records, nil
}

// Mutate applies fn to the current record set and persists the result
// atomically. fn runs under the collection lock, so concurrent mutations
// never interleave a read-modify-write. Returning an error from fn leaves
// the file untouched.
func (c *Collection[T]) Mutate(fn func(records []T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.Load()
	if err != nil {
		return nil, err
	}

	updated, err := fn(records)
	if err != nil {
		return nil, err
	}

	if err := c.write(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode store file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return errs.Wrap(err, "failed to create temp store file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write temp store file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to sync temp store file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close temp store file")
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace store file")
	}
	return nil
}
