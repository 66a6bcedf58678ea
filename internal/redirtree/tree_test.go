package redirtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"redirfs/internal/folder"
	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

func TestAddFileCreatesPath(t *testing.T) {
	tree := New()
	tree.AddFile(`GAME\DATA\A.BIN`, `MOD`, `A.BIN`, false)

	game, ok := tree.Root.Children.TryGet("GAME")
	require.True(t, ok)
	data, ok := game.Children.TryGet("DATA")
	require.True(t, ok)

	tgt, ok := data.Files.TryGet("A.BIN")
	require.True(t, ok)
	require.Equal(t, "MOD", tgt.Directory)
	require.Equal(t, "A.BIN", tgt.FileName)
}

func TestFileOverridesFolderWhenAppliedAfter(t *testing.T) {
	tree := New()
	files := spandict.New[[]target.Target](1)
	files.AddOrReplace("", []target.Target{target.New(`MOD`, `A.BIN`, false)})
	tree.AddFolderOverlay(`GAME\DATA`, &folder.FolderRedirection{
		SourceFolder:     `GAME\DATA`,
		TargetFolder:     `MOD`,
		SubfolderToFiles: files,
	})
	// a single-file redirect applied after the folder overlay wins
	tree.AddFile(`GAME\DATA\A.BIN`, `OTHER`, `A.BIN`, false)

	data, _ := tree.Root.Children.TryGet("GAME")
	data, _ = data.Children.TryGet("DATA")
	tgt, ok := data.Files.TryGet("A.BIN")
	require.True(t, ok)
	require.Equal(t, "OTHER", tgt.Directory)
}
