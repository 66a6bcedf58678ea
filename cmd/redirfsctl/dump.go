package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every redirect currently declared in the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump()
		},
	}
	rootCmd.AddCommand(cmd)
}

func runDump() error {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(m)
	}

	printInfo("files (%d):\n", len(m.Files))
	for _, f := range m.Files {
		printInfo("  %s -> %s\\%s\n", f.Old, f.NewDir, f.NewFile)
	}

	printInfo("folders (%d):\n", len(m.Folders))
	for _, fr := range m.Folders {
		watch := ""
		if fr.Watch {
			watch = " (watched)"
		}
		printInfo("  %s -> %s%s\n", fr.Source, fr.Target, watch)
	}
	return nil
}
