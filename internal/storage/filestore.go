package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/logger"
)

// FileStore persists each collection as a JSON file under a data
// directory. Writes go through a temp file and a rename so a crash
// mid-write never leaves a truncated snapshot behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(ctx context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", collection)
	}

	path := s.path(collection)
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", collection)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write snapshot for %s", collection)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close snapshot for %s", collection)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace snapshot for %s", collection)
	}

	logger.Debug("Snapshot saved", "collection", collection, "bytes", len(data))
	return nil
}

func (s *FileStore) Load(ctx context.Context, collection string, out any) error {
	path := s.path(collection)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No snapshot found, starting empty", "collection", collection)
			return nil
		}
		return errors.Wrapf(err, "failed to read snapshot for %s", collection)
	}

	if err := json.Unmarshal(data, out); err != nil {
		// A corrupt snapshot loads as an empty collection rather than
		// blocking startup.
		logger.Warn("Snapshot is corrupt, starting empty", "collection", collection, "error", err)
		return nil
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", collection))
}
