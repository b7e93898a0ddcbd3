// Package cache persists run snapshots as pretty-printed JSON files.
//
// Two kinds of snapshot live in the cache directory: the merged dataset for
// one run signature (draft_board_data_<signature>.json) and the raw
// depth-chart document (sports_data_io.json). Files are written whole through
// a temporary file and a rename, and read whole. There is no locking.
package cache

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/draftboard/pkg/constants"
	"github.com/agentstation/draftboard/pkg/errors"
	"github.com/agentstation/draftboard/pkg/players"
)

// Store reads and writes snapshots under one directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	if dir == "" {
		dir = constants.DefaultCacheDir
	}
	return &Store{dir: dir}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// DatasetPath returns the snapshot path for a run signature.
func (s *Store) DatasetPath(signature string) string {
	return filepath.Join(s.dir, constants.DatasetSnapshotPrefix+signature+".json")
}

// DepthChartPath returns the depth-chart snapshot path.
func (s *Store) DepthChartPath() string {
	return filepath.Join(s.dir, constants.DepthChartSnapshotFile)
}

// LoadDataset reads the merged dataset for signature. A missing snapshot is
// an error matching errors.ErrNotFound.
func (s *Store) LoadDataset(signature string) (*players.Dataset, error) {
	path := s.DatasetPath(signature)
	data, err := s.read(path, "dataset snapshot", signature)
	if err != nil {
		return nil, err
	}
	ds := players.NewDataset()
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return ds, nil
}

// SaveDataset overwrites the snapshot for signature.
func (s *Store) SaveDataset(signature string, ds *players.Dataset) error {
	return s.WriteJSON(s.DatasetPath(signature), ds)
}

// ClearDataset removes the snapshot for signature. Removing a missing file is not an error.
func (s *Store) ClearDataset(signature string) (bool, error) {
	return remove(s.DatasetPath(signature))
}

// LoadDepthChart returns the raw depth-chart document.
func (s *Store) LoadDepthChart() ([]byte, error) {
	return s.read(s.DepthChartPath(), "depth chart snapshot", constants.DepthChartSnapshotFile)
}

// SaveDepthChart stores a depth-chart document, re-indented for readability.
func (s *Store) SaveDepthChart(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", constants.SnapshotIndent); err != nil {
		return errors.WrapParse("json", s.DepthChartPath(), err)
	}
	buf.WriteByte('\n')
	return s.writeFile(s.DepthChartPath(), buf.Bytes())
}

// ClearDepthChart removes the depth-chart snapshot.
func (s *Store) ClearDepthChart() (bool, error) {
	return remove(s.DepthChartPath())
}

// WriteJSON marshals v with four-space indentation and writes it to path atomically.
func (s *Store) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", constants.SnapshotIndent)
	if err != nil {
		return errors.WrapResource("encode", "snapshot", filepath.Base(path), err)
	}
	return s.writeFile(path, append(data, '\n'))
}

func (s *Store) read(path, resource, id string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(resource, id)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}

func (s *Store) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".snapshot_*.json")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}

func remove(path string) (bool, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.WrapIO("delete", path, err)
	}
}
