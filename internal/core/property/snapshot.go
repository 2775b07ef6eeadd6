package property

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Snapshot is the on-disk form of an entity's values.
type Snapshot struct {
	Name   string            `yaml:"name"`
	Values map[string]string `yaml:"values"`
}

// Snapshot returns the current values of the entity.
func (e *Entity) Snapshot() Snapshot {
	return Snapshot{Name: e.name, Values: e.Values()}
}

// Save writes the entity values to path as YAML, creating parent directories.
func (e *Entity) Save(path string) error {
	data, err := yaml.Marshal(e.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal entity: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create entity dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write entity: %w", err)
	}
	return nil
}

// Load replaces the entity values with the snapshot stored at path. A
// snapshot for a different entity name is ignored. Returns false when there
// is no snapshot to load. Loading clears the undo history.
func (e *Entity) Load(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read entity: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return false, fmt.Errorf("parse entity: %w", err)
	}

	if snap.Name != e.name {
		e.logger.Warn().Str("snapshot", snap.Name).Msg("ignoring snapshot for another entity")
		return false, nil
	}

	values := make(map[string]string, len(snap.Values))
	for k, v := range snap.Values {
		if v != "" {
			values[k] = v
		}
	}
	e.values.Replace(values)

	e.mu.Lock()
	e.undo, e.redo = nil, nil
	e.mu.Unlock()

	return true, nil
}
