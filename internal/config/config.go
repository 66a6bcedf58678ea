// Package config loads the static startup overlay manifest: the list of
// file and folder redirects a host applies to a fresh Manager before
// calling Optimise, read from a YAML/JSON/TOML file via Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"redirfs/internal/manager"
)

// FileRedirectSpec is one manifest-declared single-file redirect.
type FileRedirectSpec struct {
	Old         string `mapstructure:"old" yaml:"old"`
	NewDir      string `mapstructure:"new_directory" yaml:"new_directory"`
	NewFile     string `mapstructure:"new_file" yaml:"new_file"`
	IsDirectory bool   `mapstructure:"is_directory" yaml:"is_directory"`
}

// FolderRedirectSpec is one manifest-declared folder overlay. Watch asks
// the loader to keep it live via fsnotify instead of applying it once.
type FolderRedirectSpec struct {
	Source string `mapstructure:"source" yaml:"source"`
	Target string `mapstructure:"target" yaml:"target"`
	Watch  bool   `mapstructure:"watch" yaml:"watch"`
}

// Manifest is the full startup overlay list.
type Manifest struct {
	Files   []FileRedirectSpec   `mapstructure:"files" yaml:"files"`
	Folders []FolderRedirectSpec `mapstructure:"folders" yaml:"folders"`
}

// Load reads the manifest at path. The format is inferred from the file
// extension (.yaml/.yml, .json, .toml — anything Viper recognises).
func Load(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading overlay manifest %s: %w", path, err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("parsing overlay manifest %s: %w", path, err)
	}
	return &m, nil
}

// Apply registers every entry in m against mgr, in file-then-folder order
// per entry declaration, watched folders last so a restart rescan doesn't
// race the initial build.
func (m *Manifest) Apply(mgr *manager.Manager) error {
	for _, f := range m.Files {
		mgr.AddFileRedirection(f.Old, f.NewDir, f.NewFile, f.IsDirectory)
	}

	for _, fr := range m.Folders {
		if fr.Watch {
			continue
		}
		if err := mgr.AddFolderRedirection(fr.Source, fr.Target); err != nil {
			return fmt.Errorf("applying folder overlay %s: %w", fr.Source, err)
		}
	}

	for _, fr := range m.Folders {
		if !fr.Watch {
			continue
		}
		if err := mgr.WatchFolderRedirection(fr.Source, fr.Target); err != nil {
			return fmt.Errorf("watching folder overlay %s: %w", fr.Source, err)
		}
	}
	return nil
}
