// Package folder scans an overlay directory on disk and builds the
// FolderRedirection configuration record consumed by RedirectionTree.
package folder

import (
	"io/fs"
	"path/filepath"

	"redirfs/internal/pathnorm"
)

// DirectoryFilesGroup is one immediate containing directory and the files
// found directly inside it during a scan.
type DirectoryFilesGroup struct {
	// Directory is the relative subfolder key, uppercased, no leading or
	// trailing separator. Empty string means "directly under the overlay
	// root".
	Directory string
	Files     []string
}

// Scan walks overlayRoot and groups every file by its immediate containing
// directory, keyed by the uppercased path relative to overlayRoot.
func Scan(overlayRoot string) ([]DirectoryFilesGroup, error) {
	groups := make(map[string][]string)
	var order []string

	err := filepath.WalkDir(overlayRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(overlayRoot, path)
		if relErr != nil {
			return relErr
		}

		dir := filepath.Dir(rel)
		if dir == "." {
			dir = ""
		}
		key := pathnorm.Normalize(dir)

		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], pathnorm.Normalize(filepath.Base(rel)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]DirectoryFilesGroup, 0, len(order))
	for _, key := range order {
		result = append(result, DirectoryFilesGroup{Directory: key, Files: groups[key]})
	}
	return result, nil
}
