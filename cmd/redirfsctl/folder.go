package main

import (
	"github.com/spf13/cobra"

	"redirfs/internal/config"
	"redirfs/internal/pathnorm"
)

var addFolderWatch bool

func init() {
	add := &cobra.Command{
		Use:   "add-folder <source> <target>",
		Short: "Add a folder overlay to the manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddFolder(args[0], args[1])
		},
	}
	add.Flags().
		BoolVar(&addFolderWatch, "watch", false, "keep the overlay live via a filesystem watch")
	rootCmd.AddCommand(add)

	remove := &cobra.Command{
		Use:   "remove-folder <source>",
		Short: "Remove a folder overlay from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveFolder(args[0])
		},
	}
	rootCmd.AddCommand(remove)
}

func runAddFolder(source, target string) error {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return err
	}

	m.Folders = append(m.Folders, config.FolderRedirectSpec{
		Source: source,
		Target: target,
		Watch:  addFolderWatch,
	})

	if err := saveManifest(m); err != nil {
		return err
	}
	printInfo("added folder overlay: %s -> %s\n", source, target)
	return nil
}

func runRemoveFolder(source string) error {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return err
	}

	key := pathnorm.TrimTrailingSeparator(pathnorm.Normalize(source))
	kept := make([]config.FolderRedirectSpec, 0, len(m.Folders))
	removed := 0
	for _, fr := range m.Folders {
		if pathnorm.TrimTrailingSeparator(pathnorm.Normalize(fr.Source)) == key {
			removed++
			continue
		}
		kept = append(kept, fr)
	}
	m.Folders = kept

	if err := saveManifest(m); err != nil {
		return err
	}
	printInfo("removed %d folder overlay(s) for %s\n", removed, source)
	return nil
}
