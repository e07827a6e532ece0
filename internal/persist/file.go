// Package persist provides the durable-storage adapters behind the state
// store's persistence port. The snapshot blob is opaque here; encoding is
// owned by the state package.
package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aureusfin/aureus/internal/state"
)

// BackupInfo describes one stored snapshot backup.
type BackupInfo struct {
	CreatedAt time.Time
	Tag       string
	Size      int64
}

// ErrBackupExists is returned when a backup tag is already taken.
var ErrBackupExists = errors.New("backup already exists")

// FileStore persists the snapshot as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted blob. A missing file reports state.ErrNotFound
// so the store starts from defaults.
func (f *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, state.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return data, nil
}

// Save writes the blob atomically: temp file first, then rename.
func (f *FileStore) Save(_ context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (f *FileStore) Close() error {
	return nil
}

// Backup copies the current snapshot file into a backups directory under
// the given tag. An empty tag gets a timestamped one.
func (f *FileStore) Backup(ctx context.Context, tag string) (BackupInfo, error) {
	if tag == "" {
		tag = fmt.Sprintf("backup-%s", time.Now().Format("2006-01-02-1504"))
	}
	if strings.ContainsAny(tag, `/\`) || strings.Contains(tag, "..") {
		return BackupInfo{}, errors.New("invalid backup tag: cannot contain path separators")
	}

	dir := filepath.Join(filepath.Dir(f.path), "backups")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to create backups directory: %w", err)
	}

	dst := filepath.Join(dir, tag+".json")
	if _, err := os.Stat(dst); err == nil {
		return BackupInfo{}, ErrBackupExists
	}

	data, err := f.Load(ctx)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("nothing to back up: %w", err)
	}
	if err := os.WriteFile(dst, data, 0600); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to write backup: %w", err)
	}

	return BackupInfo{Tag: tag, CreatedAt: time.Now(), Size: int64(len(data))}, nil
}

// Backups lists stored backups, newest first.
func (f *FileStore) Backups(_ context.Context) ([]BackupInfo, error) {
	dir := filepath.Join(filepath.Dir(f.path), "backups")
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	var infos []BackupInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, BackupInfo{
			Tag:       strings.TrimSuffix(e.Name(), ".json"),
			CreatedAt: fi.ModTime(),
			Size:      fi.Size(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].CreatedAt.After(infos[j].CreatedAt) })
	return infos, nil
}
