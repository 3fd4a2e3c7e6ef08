package bow

import (
	"fmt"
	"path/filepath"

	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

// FromFile builds a Bag from one text file.
func FromFile(fsys filesystem.FileSystem, path string) (Bag, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Bag{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FromText(string(data)), nil
}

// FromDir builds a Bag from every regular file directly inside dir.
// Unreadable files are skipped. onFile, if non-nil, is called once per
// directory entry, for progress reporting.
func FromDir(fsys filesystem.FileSystem, dir string, onFile func(name string)) (Bag, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return Bag{}, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	bag := New()
	for _, entry := range entries {
		if onFile != nil {
			onFile(entry.Name())
		}
		if entry.IsDir() {
			continue
		}

		fileBag, err := FromFile(fsys, filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		bag = bag.Combine(fileBag)
	}

	return bag, nil
}
