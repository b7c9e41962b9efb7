package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source is a PNG file found on disk.
type Source struct {
	// AbsPath is the path to the file on disk.
	AbsPath string
	// RelPath is the slash-separated path relative to the scanned directory.
	RelPath string
	// Size is the file size in bytes.
	Size int64
}

// ScanPNGs walks dir and returns every .png file, skipping hidden
// directories. A path naming a single file returns just that file.
func ScanPNGs(dir string) ([]Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []Source{{AbsPath: dir, RelPath: filepath.Base(dir), Size: info.Size()}}, nil
	}

	var sources []Source
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".png" {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Size:    fi.Size(),
		})
		return nil
	})
	return sources, err
}
