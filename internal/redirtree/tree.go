// Package redirtree implements the mutable, per-path-segment trie used
// during configuration: adding file and folder overlays before they are
// compiled into a query-time LookupTree.
package redirtree

import (
	"redirfs/internal/folder"
	"redirfs/internal/pathnorm"
	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

// Node is one trie node: a set of child nodes keyed by path segment, and
// the files that live directly inside this directory.
type Node struct {
	Children *spandict.SpanDict[*Node]
	Files    *spandict.SpanDict[target.Target]
}

func newNode() *Node {
	return &Node{
		Children: spandict.New[*Node](4),
		Files:    spandict.New[target.Target](4),
	}
}

// Tree is the mutable build-time trie. It is touched only during
// configuration, which the concurrency model treats as single-threaded.
type Tree struct {
	Root *Node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{Root: newNode()}
}

// descend walks from the root creating any missing child nodes for each
// directory segment, returning the node at dirPath.
func (t *Tree) descend(dirPath string) *Node {
	return t.descendSegments(pathnorm.Segments(dirPath))
}

// AddFile inserts a single file redirect. oldPath is the full path being
// redirected (already normalized/uppercased); newDir/newFile/isDir describe
// where it resolves to.
func (t *Tree) AddFile(oldPath, newDir, newFile string, isDir bool) {
	segments := pathnorm.Segments(oldPath)
	if len(segments) == 0 {
		return
	}
	node := t.descendSegments(segments[:len(segments)-1])
	node.Files.AddOrReplace(segments[len(segments)-1], target.New(newDir, newFile, isDir))
}

func (t *Tree) descendSegments(segments []string) *Node {
	node := t.Root
	for _, seg := range segments {
		child, ok := node.Children.TryGet(seg)
		if !ok {
			child = newNode()
			node.Children.AddOrReplace(seg, child)
		}
		node = child
	}
	return node
}

// AddFolderOverlay merges every file in overlay into the tree rooted at
// sourceDir. When a file already exists at that position the overlay wins:
// overlays are registered in application order, and the manager re-applies
// file-level overrides after every folder overlay so individual file
// redirects still take precedence.
func (t *Tree) AddFolderOverlay(sourceDir string, overlay *folder.FolderRedirection) {
	overlay.SubfolderToFiles.Iterate(func(relSub string, files []target.Target) bool {
		dirPath := sourceDir
		if relSub != "" {
			dirPath = sourceDir + pathnorm.Separator + relSub
		}
		node := t.descend(dirPath)
		for _, f := range files {
			node.Files.AddOrReplace(f.FileName, f)
		}
		return true
	})
}
