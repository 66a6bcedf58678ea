package main

import (
	"github.com/spf13/cobra"
)

var optimiseSnapshotPath string

func init() {
	cmd := &cobra.Command{
		Use:   "optimise",
		Short: "Apply the manifest in-process and report it compiles cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimise()
		},
	}
	cmd.Flags().
		StringVar(&optimiseSnapshotPath, "snapshot", "", "also write a diagnostic state snapshot to this path")
	rootCmd.AddCommand(cmd)
}

func runOptimise() error {
	mgr, err := buildManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	if optimiseSnapshotPath != "" {
		if err := mgr.SaveSnapshot(optimiseSnapshotPath); err != nil {
			return err
		}
	}

	printInfo("manifest %s compiled and optimised successfully\n", manifestPath)
	return nil
}
