package dataset

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/hamlet-ml/hamlet/internal/filesystem"
)

// Class labels recognized during discovery. Files are labeled by the name of
// their parent directory, wherever that directory sits in the tree.
const (
	ClassHam  = "ham"
	ClassSpam = "spam"
)

// IgnoreFileName is an optional ignore file at the source root, using
// gitignore syntax, for excluding junk files from discovery.
const IgnoreFileName = ".corpusignore"

// summaryFileName is discovered and counted but never read. The enron corpus
// ships a Summary.txt next to each mailbox; it is not a data file.
const summaryFileName = "Summary.txt"

// Discovery holds the labeled files found under a source root. Paths are
// sorted lexicographically so the downstream split is deterministic.
type Discovery struct {
	Ham       []string
	Spam      []string
	Summaries []string
	Ignored   int
}

// Discover walks the tree under root and collects files that are direct
// children of any directory named "ham" or "spam".
func Discover(fsys filesystem.FileSystem, root string) (*Discovery, error) {
	ignore, err := loadIgnoreFile(fsys, root)
	if err != nil {
		return nil, err
	}

	d := &Discovery{}
	err = fsys.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ignore != nil && path != root {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil {
				if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
					if entry.IsDir() {
						return filepath.SkipDir
					}
					d.Ignored++
					return nil
				}
			}
		}

		if entry.IsDir() {
			return nil
		}

		if entry.Name() == summaryFileName {
			d.Summaries = append(d.Summaries, path)
			return nil
		}

		switch filepath.Base(filepath.Dir(path)) {
		case ClassHam:
			d.Ham = append(d.Ham, path)
		case ClassSpam:
			d.Spam = append(d.Spam, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(d.Ham)
	sort.Strings(d.Spam)
	sort.Strings(d.Summaries)

	return d, nil
}

func loadIgnoreFile(fsys filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, IgnoreFileName)
	if !fsys.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fsys.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFileName, err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
