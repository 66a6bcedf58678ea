package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"redirfs/internal/pathnorm"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmptyManagerMisses(t *testing.T) {
	m := New()
	m.Optimise()

	_, ok := m.Redirect(`\??\C:\GAME\DATA\A.BIN`)
	require.False(t, ok)
}

func TestSingleFileRedirect(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.Optimise()

	newPath, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)
	require.Equal(t, `C:\MOD\A.BIN`, newPath)
}

func TestFolderOverlay(t *testing.T) {
	modDir := t.TempDir()
	writeFile(t, filepath.Join(modDir, "a.bin"), "a")
	writeFile(t, filepath.Join(modDir, "sub", "b.bin"), "b")

	m := New()
	require.NoError(t, m.AddFolderRedirection(`C:\game\data`, modDir))
	m.Optimise()

	modUpper := pathnorm.TrimTrailingSeparator(pathnorm.Normalize(modDir))

	newPath, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)
	require.Equal(t, modUpper+`\A.BIN`, newPath)

	newPath, ok = m.Redirect(`C:\GAME\DATA\SUB\B.BIN`)
	require.True(t, ok)
	require.Equal(t, modUpper+`\SUB\B.BIN`, newPath)

	_, ok = m.Redirect(`C:\GAME\DATA\C.BIN`)
	require.False(t, ok)
}

func TestFileWinsOverFolder(t *testing.T) {
	modDir := t.TempDir()
	writeFile(t, filepath.Join(modDir, "a.bin"), "a")

	m := New()
	require.NoError(t, m.AddFolderRedirection(`C:\game\data`, modDir))
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\other`, `a.bin`, false)
	m.Optimise()

	newPath, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)
	require.Equal(t, `C:\OTHER\A.BIN`, newPath)
}

func TestRemoveFileRedirectionRebuilds(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.Optimise()

	_, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)

	m.RemoveFileRedirection(`C:\game\data\a.bin`)
	_, ok = m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.False(t, ok)
}

func TestRebuildEquivalenceAfterRemoveAndReadd(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.AddFileRedirection(`C:\game\data\b.bin`, `C:\mod`, `b.bin`, false)
	m.Optimise()

	m.RemoveFileRedirection(`C:\game\data\a.bin`)
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)

	direct := New()
	direct.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	direct.AddFileRedirection(`C:\game\data\b.bin`, `C:\mod`, `b.bin`, false)
	direct.Optimise()

	pa, oka := m.Redirect(`C:\GAME\DATA\A.BIN`)
	pb, okb := direct.Redirect(`C:\GAME\DATA\A.BIN`)
	require.Equal(t, oka, okb)
	require.Equal(t, pa, pb)
}

func TestDisableMakesEveryLookupMiss(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.Optimise()
	m.Disable()

	_, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.False(t, ok)

	m.Enable()
	_, ok = m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)
}

func TestRedirectingCallbackFiresWithCorrelationID(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.Optimise()

	var gotID uuid.UUID
	var gotOld, gotNew string
	m.OnRedirecting(func(id uuid.UUID, oldPath, newPath string) {
		gotID = id
		gotOld = oldPath
		gotNew = newPath
	})

	loadCount := 0
	m.OnLoading(func(id uuid.UUID, path string) {
		loadCount++
	})

	_, ok := m.Redirect(`C:\GAME\DATA\A.BIN`)
	require.True(t, ok)
	require.NotEqual(t, uuid.Nil, gotID)
	require.Equal(t, `C:\GAME\DATA\A.BIN`, gotOld)
	require.Equal(t, `C:\MOD\A.BIN`, gotNew)
	require.Equal(t, 1, loadCount)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	m := New()
	m.AddFileRedirection(`C:\game\data\a.bin`, `C:\mod`, `a.bin`, false)
	m.Optimise()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, m.SaveSnapshot(path))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Version)
	require.Len(t, snap.FileRedirections, 1)
}
