package enum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

type fakeLookup struct {
	folders map[string]*spandict.SpanDict[target.Target]
}

func (f *fakeLookup) TryGetFolder(path string) (*spandict.SpanDict[target.Target], bool) {
	d, ok := f.folders[path]
	return d, ok
}

type fakeNative struct {
	batches [][]string
	call    int
}

func (n *fakeNative) Enumerate(restart bool) ([]string, bool, error) {
	if restart {
		n.call = 0
	}
	if n.call >= len(n.batches) {
		return nil, false, nil
	}
	batch := n.batches[n.call]
	n.call++
	more := n.call < len(n.batches)
	return batch, more, nil
}

func newOverlayFolder(names ...string) *spandict.SpanDict[target.Target] {
	d := spandict.New[target.Target](len(names))
	for _, name := range names {
		d.AddOrReplace(name, target.New("C:\\MOD", name, false))
	}
	return d
}

func TestMergeInjectsOverlayEntriesNotAlreadyNative(t *testing.T) {
	lookup := &fakeLookup{folders: map[string]*spandict.SpanDict[target.Target]{
		`C:\GAME\DATA`: newOverlayFolder("A.BIN", "NEW.BIN"),
	}}
	native := &fakeNative{batches: [][]string{{"A.BIN", "B.BIN"}}}

	h := NewHandleState(`C:\GAME\DATA`)
	result, err := Merge(h, lookup, native, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"A.BIN", "B.BIN", "NEW.BIN"}, result.Names)
	require.False(t, result.MoreData)
}

func TestMergeSpansTwoCallsWithSmallBuffer(t *testing.T) {
	lookup := &fakeLookup{folders: map[string]*spandict.SpanDict[target.Target]{
		`C:\GAME\DATA`: newOverlayFolder("A.BIN", "NEW.BIN"),
	}}
	native := &fakeNative{batches: [][]string{{"A.BIN", "B.BIN"}}}

	h := NewHandleState(`C:\GAME\DATA`)

	first, err := Merge(h, lookup, native, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"A.BIN", "B.BIN"}, first.Names)
	require.True(t, first.MoreData)

	second, err := Merge(h, lookup, native, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"NEW.BIN"}, second.Names)
	require.False(t, second.MoreData)
}

func TestMergeNeverDuplicatesOverlappingName(t *testing.T) {
	lookup := &fakeLookup{folders: map[string]*spandict.SpanDict[target.Target]{
		`C:\GAME\DATA`: newOverlayFolder("A.BIN"),
	}}
	native := &fakeNative{batches: [][]string{{"A.BIN"}}}

	h := NewHandleState(`C:\GAME\DATA`)
	result, err := Merge(h, lookup, native, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"A.BIN"}, result.Names)
}

func TestSetQueryFileNameResetsMergerState(t *testing.T) {
	lookup := &fakeLookup{folders: map[string]*spandict.SpanDict[target.Target]{
		`C:\GAME\DATA`: newOverlayFolder("A.BIN", "A.TXT"),
	}}
	native := &fakeNative{batches: [][]string{{}}}

	h := NewHandleState(`C:\GAME\DATA`)
	_, err := Merge(h, lookup, native, 10)
	require.NoError(t, err)
	require.Len(t, h.Items, 2)

	h.SetQueryFileName("*.TXT")
	require.True(t, h.ForceRestartScan)
	require.Nil(t, h.Items)

	native2 := &fakeNative{batches: [][]string{{}}}
	result, err := Merge(h, lookup, native2, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"A.TXT"}, result.Names)
}

func TestMissingOverlayFolderYieldsNativeOnly(t *testing.T) {
	lookup := &fakeLookup{folders: map[string]*spandict.SpanDict[target.Target]{}}
	native := &fakeNative{batches: [][]string{{"A.BIN"}}}

	h := NewHandleState(`C:\GAME\DATA`)
	result, err := Merge(h, lookup, native, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"A.BIN"}, result.Names)
}
