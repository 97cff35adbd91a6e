package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

// document is one flat JSON file on disk. The mutex gives single-writer
// discipline per document; readers take it too so a read never observes a
// partially written file from this process. Writers in other processes
// still race, which the flat-file model accepts.
type document struct {
	path string
	mu   sync.Mutex
}

func (d *document) read(v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readLocked(v)
}

func (d *document) readLocked(v any) error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrDocumentMissing, d.path)
		}
		return fmt.Errorf("read %s: %w", d.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", d.path, err)
	}
	return nil
}

func (d *document) write(v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeLocked(v)
}

// writeLocked pretty-prints so the documents stay hand-editable.
func (d *document) writeLocked(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}
