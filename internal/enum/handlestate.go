// Package enum implements the directory enumeration merger: the
// per-open-directory-handle state and splicing logic that injects overlay
// entries into the stream an underlying NtQueryDirectoryFile[Ex] call
// returns, without duplicates and without breaking restart semantics.
package enum

import (
	"path/filepath"

	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

// InjectedEntry is one overlay-originated directory entry awaiting
// injection: Name is the virtual entry name the directory listing should
// show (the original, pre-redirection file name), Target is where it
// actually resolves when later opened.
type InjectedEntry struct {
	Name   string
	Target target.Target
}

// HandleState is the bookkeeping kept for one open directory handle,
// created when NtCreateFile/NtOpenFile succeeds and destroyed
// asynchronously when the close-handle interceptor drains its queue.
type HandleState struct {
	FilePath         string
	QueryFileName    string
	Items            []InjectedEntry
	AlreadyInjected  *spandict.SpanDict[bool]
	CurrentItem      int
	NumInjectedItems int
	ForceRestartScan bool

	itemIndex *spandict.SpanDict[int]
}

// NewHandleState creates handle state for a freshly opened directory,
// with the default "*" filter pattern.
func NewHandleState(filePath string) *HandleState {
	return &HandleState{
		FilePath:      filePath,
		QueryFileName: "*",
	}
}

// SetQueryFileName installs a new filter pattern. When it differs from the
// last one used, the merger is reset: AlreadyInjected and the populated
// item set are cleared, CurrentItem goes back to zero, and
// ForceRestartScan is set so the next call restarts the underlying scan
// too — the overlay set must be re-filtered against the new pattern.
func (h *HandleState) SetQueryFileName(pattern string) {
	if pattern == h.QueryFileName {
		return
	}
	h.QueryFileName = pattern
	h.Items = nil
	h.itemIndex = nil
	h.AlreadyInjected = nil
	h.CurrentItem = 0
	h.NumInjectedItems = 0
	h.ForceRestartScan = true
}

// FolderLookup is the one capability the merger needs from the LookupTree:
// resolving a directory path to its overlay file map.
type FolderLookup interface {
	TryGetFolder(path string) (*spandict.SpanDict[target.Target], bool)
}

// EnsurePopulated fills Items from the overlay set for FilePath, filtered
// by the current QueryFileName pattern, the first time it's needed for
// this handle (or again after SetQueryFileName reset it to nil).
func (h *HandleState) EnsurePopulated(lookup FolderLookup) {
	if h.Items != nil {
		return
	}

	inner, ok := lookup.TryGetFolder(h.FilePath)
	if !ok {
		h.Items = []InjectedEntry{}
		h.itemIndex = spandict.New[int](0)
		h.AlreadyInjected = spandict.New[bool](0)
		return
	}

	items := make([]InjectedEntry, 0, inner.Count())
	index := spandict.New[int](inner.Count())
	inner.Iterate(func(name string, tgt target.Target) bool {
		if !matchesPattern(name, h.QueryFileName) {
			return true
		}
		index.AddOrReplace(name, len(items))
		items = append(items, InjectedEntry{Name: name, Target: tgt})
		return true
	})

	h.Items = items
	h.itemIndex = index
	if h.AlreadyInjected == nil {
		h.AlreadyInjected = spandict.New[bool](len(items))
	}
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
