package folder

import (
	"redirfs/internal/pathnorm"
	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

// FolderRedirection is a configuration record for one (source, target)
// overlay pair: every file under targetFolder logically replaces the file
// at the same relative path under sourceFolder.
type FolderRedirection struct {
	SourceFolder string
	TargetFolder string

	// SubfolderToFiles maps a subfolder path relative to TargetFolder
	// (empty string for files directly in TargetFolder) to the list of
	// Targets found there.
	SubfolderToFiles *spandict.SpanDict[[]target.Target]
}

// Equal is structural on (SourceFolder, TargetFolder), per the data model.
func (fr *FolderRedirection) Equal(other *FolderRedirection) bool {
	if other == nil {
		return false
	}
	return fr.SourceFolder == other.SourceFolder && fr.TargetFolder == other.TargetFolder
}

// New scans targetFolder on disk and builds a FolderRedirection mapping it
// onto sourceFolder.
func New(sourceFolder, targetFolder string) (*FolderRedirection, error) {
	source := pathnorm.TrimTrailingSeparator(pathnorm.Normalize(sourceFolder))
	dest := pathnorm.TrimTrailingSeparator(pathnorm.Normalize(targetFolder))

	groups, err := Scan(targetFolder)
	if err != nil {
		return nil, err
	}

	sf := spandict.New[[]target.Target](len(groups))
	for _, g := range groups {
		dirPath := dest
		if g.Directory != "" {
			dirPath = dest + pathnorm.Separator + g.Directory
		}

		files := make([]target.Target, 0, len(g.Files))
		for _, f := range g.Files {
			files = append(files, target.New(dirPath, f, false))
		}
		sf.AddOrReplace(g.Directory, files)
	}

	return &FolderRedirection{
		SourceFolder:     source,
		TargetFolder:     dest,
		SubfolderToFiles: sf,
	}, nil
}
