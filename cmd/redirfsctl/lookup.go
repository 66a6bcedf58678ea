package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"redirfs/internal/manager"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lookup <path>",
		Short: "Apply the manifest in-process and resolve one path against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}

func runLookup(path string) error {
	mgr, err := buildManager()
	if err != nil {
		return err
	}
	defer mgr.Close()

	newPath, redirected := mgr.Redirect(path)
	if jsonOut {
		return printJSON(map[string]any{
			"path":       path,
			"redirected": redirected,
			"resolved":   newPath,
		})
	}

	if !redirected {
		printInfo("%s -> (no redirect)\n", path)
		return nil
	}
	printInfo("%s -> %s\n", path, newPath)
	return nil
}

func buildManager() (*manager.Manager, error) {
	m, err := loadManifestOrEmpty()
	if err != nil {
		return nil, err
	}

	mgr := manager.New()
	if err := m.Apply(mgr); err != nil {
		return nil, fmt.Errorf("applying manifest: %w", err)
	}
	mgr.Optimise()
	return mgr, nil
}
