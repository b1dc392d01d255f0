package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/logger"
)

type FileWalker interface {
	Walk(root string) ([]string, error)
}

type FileWalkerImpl struct {
	// Exclude lists directory names that are not descended into.
	Exclude []string
}

func NewFileWalker(exclude []string) *FileWalkerImpl {
	return &FileWalkerImpl{Exclude: exclude}
}

// Walk returns the absolute path of every regular file below root in
// lexical directory order. Symlinks and other special files are skipped.
func (w *FileWalkerImpl) Walk(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.IO(err, "failed to resolve source directory %s", root)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, errors.IO(err, "source directory %s is not accessible", absRoot)
	}
	if !info.IsDir() {
		return nil, errors.IO(errors.Newf("%s is not a directory", absRoot), "invalid source directory")
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.IO(err, "failed to read %s", path)
		}

		if d.IsDir() {
			if path != absRoot && w.isExcluded(d.Name()) {
				logger.Debug("Excluding directory: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			logger.Debug("Skipping non-regular file: %s", path)
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Found %d files under %s", len(files), absRoot)
	return files, nil
}

func (w *FileWalkerImpl) isExcluded(name string) bool {
	for _, ex := range w.Exclude {
		if name == ex {
			return true
		}
	}
	return false
}
