package main

import (
	"github.com/spf13/cobra"

	"redirfs/internal/config"
)

var addIsDirectory bool

func init() {
	cmd := &cobra.Command{
		Use:   "add <old-path> <new-directory> <new-file-name>",
		Short: "Add a single-file redirect to the manifest",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args[0], args[1], args[2])
		},
	}
	cmd.Flags().BoolVar(&addIsDirectory, "directory", false, "the redirect target is a directory")
	rootCmd.AddCommand(cmd)
}

func runAdd(oldPath, newDir, newFile string) error {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return err
	}

	m.Files = append(m.Files, config.FileRedirectSpec{
		Old:         oldPath,
		NewDir:      newDir,
		NewFile:     newFile,
		IsDirectory: addIsDirectory,
	})

	if err := saveManifest(m); err != nil {
		return err
	}
	printInfo("added file redirect: %s -> %s\\%s\n", oldPath, newDir, newFile)
	return nil
}
