// Package store persists the governor's tuned thermal tables to a
// human-readable document on disk. Grounded on the teacher's
// metal/core/secure FileStore: best-effort, last-write-wins, no
// atomic-rename dance, because the document is small, off the hot path,
// and the defaults are viable if it is ever lost or corrupted.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/thermalctl"
)

// FileStore loads and saves a thermalctl.State document at a single path.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore returns a store bound to path. The parent directory is
// created lazily on first Save, not here.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the state document from disk. On any read or parse failure
// it logs the problem and returns thermalctl.DefaultState() rather than
// propagating an error: a missing or corrupt state file is not fatal.
func (s *FileStore) Load() thermalctl.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to read state file, using defaults", zap.String("path", s.path), zap.Error(err))
		}
		return thermalctl.DefaultState()
	}

	var state thermalctl.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn("failed to parse state file, using defaults", zap.String("path", s.path), zap.Error(err))
		return thermalctl.DefaultState()
	}

	return state
}

// Save serializes state as indented JSON and writes it to disk,
// creating the parent directory if needed. Failures are logged, not
// returned: persistence is best-effort.
func (s *FileStore) Save(state thermalctl.State) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Warn("failed to create state directory", zap.String("path", s.path), zap.Error(err))
		return
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		s.log.Warn("failed to marshal state", zap.Error(err))
		return
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Warn("failed to write state file", zap.String("path", s.path), zap.Error(err))
	}
}
