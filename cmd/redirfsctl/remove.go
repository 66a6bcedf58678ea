package main

import (
	"github.com/spf13/cobra"

	"redirfs/internal/config"
	"redirfs/internal/pathnorm"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remove <old-path>",
		Short: "Remove a single-file redirect from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}

func runRemove(oldPath string) error {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return err
	}

	key := pathnorm.Normalize(oldPath)
	kept := make([]config.FileRedirectSpec, 0, len(m.Files))
	removed := 0
	for _, f := range m.Files {
		if pathnorm.Normalize(f.Old) == key {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	m.Files = kept

	if err := saveManifest(m); err != nil {
		return err
	}
	printInfo("removed %d file redirect(s) for %s\n", removed, oldPath)
	return nil
}
