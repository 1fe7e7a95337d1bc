package store

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const blobExt = ".json"

// this file persists each key in its own file of a folder, in a way that is still human readable, and git friendly.
//
// The key is path-escaped to build the filename, so any key can be stored.
// A value is written to a temporary file first then renamed, so a crash never leaves a truncated blob.

// Dir is a store keeping one file per key in a folder.
type Dir struct {
	folder string
	log    *zap.Logger
}

// OpenDir returns a store in 'folder', creating it if needed.
func OpenDir(folder string, log *zap.Logger) (*Dir, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", folder, err)
	}
	return &Dir{folder: folder, log: log}, nil
}

func (d *Dir) filename(key string) string {
	return filepath.Join(d.folder, url.PathEscape(key)+blobExt)
}

func (d *Dir) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(d.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return string(data), true, nil
}

func (d *Dir) Set(key, value string) error {
	name := d.filename(key)
	tmp, err := os.CreateTemp(d.folder, ".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	_, err = tmp.WriteString(value)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), name)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	d.log.Debug("write-store-file", zap.String("name", name), zap.Int("bytes", len(value)))
	return nil
}

func (d *Dir) Delete(key string) error {
	name := d.filename(key)
	err := os.Remove(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	d.log.Debug("delete-store-file", zap.String("name", name))
	return nil
}

// Keys lists the keys stored in the folder, in alphabetical order.
func (d *Dir) Keys() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(d.folder, "*"+blobExt))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		key, err := url.PathUnescape(strings.TrimSuffix(filepath.Base(m), blobExt))
		if err != nil {
			d.log.Warn("ignore-store-file", zap.String("name", m), zap.Error(err))
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
