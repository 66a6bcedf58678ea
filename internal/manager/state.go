package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"redirfs/internal/logging"
)

var stateLogger = logging.GetLogger().WithPrefix("manager.state")

// Snapshot is a diagnostic, point-in-time record of which overlays are
// currently registered. It is persisted so a host can inspect the active
// set without re-deriving it from the trees, and is never read back to
// reconstruct manager state — all real state lives in process memory.
type Snapshot struct {
	Version            int      `json:"version"`
	FileRedirections   []string `json:"file_redirections"`
	FolderRedirections []string `json:"folder_redirections"`
}

// SaveSnapshot writes the manager's current overlay list to path as
// indented JSON, creating parent directories as needed.
func (m *Manager) SaveSnapshot(path string) error {
	m.mu.Lock()
	snap := Snapshot{Version: 1}
	for _, fe := range m.fileRedirections {
		snap.FileRedirections = append(snap.FileRedirections,
			fmt.Sprintf("%s -> %s%s%s", fe.oldPath, fe.newDir, `\`, fe.newFile))
	}
	for _, fr := range m.folderRedirections {
		snap.FolderRedirections = append(snap.FolderRedirections,
			fmt.Sprintf("%s -> %s", fr.SourceFolder, fr.TargetFolder))
	}
	m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	stateLogger.Debug("writing %d bytes of snapshot data to %s", len(data), path)
	return os.WriteFile(path, data, 0o600)
}

// LoadSnapshot reads a previously saved snapshot back, for display
// purposes only.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}
