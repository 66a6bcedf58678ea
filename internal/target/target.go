// Package target holds the Target value redirects resolve to, along with
// the process-wide directory string pool that keeps memory flat on large
// mod trees: every file under the same subfolder shares one Directory
// string instance instead of each carrying its own copy.
package target

import "sync"

// Target describes the on-disk destination of a redirect.
type Target struct {
	Directory   string
	FileName    string
	IsDirectory bool
}

var pool = struct {
	mu sync.Mutex
	m  map[string]string
}{m: make(map[string]string)}

// Intern returns the canonical shared instance of s, registering it in the
// pool on first use. Grounded on the owned-id/owned-string interning
// pattern used throughout the corpus for path dedup (see
// other_examples/Sumatoshi-tech-codefang__path_interner.go).
func Intern(s string) string {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	if existing, ok := pool.m[s]; ok {
		return existing
	}
	pool.m[s] = s
	return s
}

// New builds a Target with its directory interned through the shared pool.
func New(directory, fileName string, isDirectory bool) Target {
	return Target{
		Directory:   Intern(directory),
		FileName:    fileName,
		IsDirectory: isDirectory,
	}
}
