// Package lookuptree implements the immutable, flattened, cache-friendly
// structure compiled from a RedirectionTree and consulted on every
// intercepted syscall.
package lookuptree

import (
	"strings"

	"redirfs/internal/pathnorm"
	"redirfs/internal/redirtree"
	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

// LookupTree is immutable once compiled: concurrent readers need no
// locking, and a rebuild publishes a brand-new instance rather than
// mutating this one.
type LookupTree struct {
	// Prefix is the longest common directory prefix shared by every entry,
	// uppercase, no trailing separator.
	Prefix string

	// SubfolderToFiles maps a subfolder path relative to Prefix (empty
	// string for files directly in the Prefix directory) to the inner map
	// of file name -> Target.
	SubfolderToFiles *spandict.SpanDict[*spandict.SpanDict[target.Target]]
}

// Compile flattens tree into a LookupTree. Games typically have one huge
// common prefix (e.g. \??\C:\Games\Foo\Data); storing it once and doing
// three dictionary operations per query (prefix compare, subfolder lookup,
// filename lookup) gives O(3) expected lookups with near-perfect cache
// locality, which measured faster than a two-step variant that folds the
// subfolder and prefix together.
func Compile(tree *redirtree.Tree) *LookupTree {
	node := tree.Root
	var prefixSegs []string
	for node.Children.Count() == 1 && node.Files.Count() == 0 {
		seg, child, ok := node.Children.GetFirst()
		if !ok {
			break
		}
		prefixSegs = append(prefixSegs, seg)
		node = child
	}
	prefix := strings.Join(prefixSegs, pathnorm.Separator)

	outer := spandict.New[*spandict.SpanDict[target.Target]](countNodes(node))
	walk(node, "", outer)

	return &LookupTree{Prefix: prefix, SubfolderToFiles: outer}
}

func countNodes(node *redirtree.Node) int {
	count := 1
	node.Children.Iterate(func(_ string, child *redirtree.Node) bool {
		count += countNodes(child)
		return true
	})
	return count
}

func walk(node *redirtree.Node, relPath string, outer *spandict.SpanDict[*spandict.SpanDict[target.Target]]) {
	inner := spandict.New[target.Target](node.Files.Count())
	node.Files.Iterate(func(name string, t target.Target) bool {
		inner.AddOrReplace(name, t)
		return true
	})
	outer.AddOrReplace(relPath, inner)

	node.Children.Iterate(func(seg string, child *redirtree.Node) bool {
		childRel := seg
		if relPath != "" {
			childRel = relPath + pathnorm.Separator + seg
		}
		walk(child, childRel, outer)
		return true
	})
}

// TryGetFolder looks up the inner file map for a directory path. path must
// already be uppercased by the caller.
func (lt *LookupTree) TryGetFolder(path string) (*spandict.SpanDict[target.Target], bool) {
	if !strings.HasPrefix(path, lt.Prefix) {
		return nil, false
	}

	hasTail := len(lt.Prefix) != len(path)
	rest := ""
	if lt.Prefix == "" {
		rest = path
	} else if hasTail {
		rest = path[len(lt.Prefix)+1:]
	}
	return lt.SubfolderToFiles.TryGet(rest)
}

// TryGetFile looks up a single file redirect. path must already be
// uppercased by the caller. Allocates nothing.
func (lt *LookupTree) TryGetFile(path string) (target.Target, bool) {
	idx := pathnorm.LastSeparator(path)
	if idx < 0 {
		var zero target.Target
		return zero, false
	}

	inner, ok := lt.TryGetFolder(path[:idx])
	if !ok {
		var zero target.Target
		return zero, false
	}
	return inner.TryGet(path[idx+1:])
}
