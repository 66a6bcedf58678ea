package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"redirfs/internal/config"
)

var (
	manifestPath string
	jsonOut      bool
)

var rootCmd = &cobra.Command{
	Use:   "redirfsctl",
	Short: "Inspect and edit a redirfs overlay manifest",
	Long: `redirfsctl edits the static startup overlay manifest a redirfs host
loads at boot, can replay it in-process to test a lookup without a live
host attached, and can dump the redirects the manifest declares.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&manifestPath, "manifest", "overlays.yaml", "path to the overlay manifest file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadManifestOrEmpty reads manifestPath, returning an empty Manifest
// instead of an error if the file doesn't exist yet — the first `add`
// against a fresh manifest path should create it, not fail.
func loadManifestOrEmpty() (*config.Manifest, error) {
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return &config.Manifest{}, nil
	}
	return config.Load(manifestPath)
}

func saveManifest(m *config.Manifest) error {
	f, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("writing manifest %s: %w", manifestPath, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(m)
}

func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
