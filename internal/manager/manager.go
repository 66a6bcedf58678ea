// Package manager owns the set of registered file and folder overlays: it
// rebuilds the build-time RedirectionTree on every change and, once
// Optimise is called, switches to serving lookups from an immutable
// LookupTree that readers can consult without locking.
package manager

import (
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"redirfs/internal/folder"
	"redirfs/internal/logging"
	"redirfs/internal/lookuptree"
	"redirfs/internal/pathnorm"
	"redirfs/internal/redirerr"
	"redirfs/internal/redirtree"
	"redirfs/internal/spandict"
	"redirfs/internal/target"
)

var logger = logging.GetLogger().WithPrefix("manager")

type fileEntry struct {
	oldPath string
	newDir  string
	newFile string
	isDir   bool
}

// RedirectingFunc is invoked after a successful path redirect decision.
type RedirectingFunc func(correlationID uuid.UUID, oldPath, newPath string)

// LoadingFunc is invoked on every intercepted load, redirected or not.
type LoadingFunc func(correlationID uuid.UUID, path string)

// Manager is the control surface the host drives: AddFileRedirection/
// AddFolderRedirection and their removals, Enable/Disable, Optimise, and the
// Redirecting/Loading event callbacks.
type Manager struct {
	mu sync.Mutex

	fileRedirections   []fileEntry
	folderRedirections []*folder.FolderRedirection

	tree            *redirtree.Tree
	usingLookupTree bool

	lookup  atomic.Pointer[lookuptree.LookupTree]
	enabled atomic.Bool

	onRedirecting []RedirectingFunc
	onLoading     []LoadingFunc

	watcher   *fsnotify.Watcher
	watchDone chan struct{}
}

// New creates an empty, enabled manager in build mode.
func New() *Manager {
	m := &Manager{tree: redirtree.New()}
	m.enabled.Store(true)
	return m
}

// Enable turns redirection on.
func (m *Manager) Enable() { m.enabled.Store(true) }

// Disable makes every lookup miss without discarding any registered state.
func (m *Manager) Disable() { m.enabled.Store(false) }

// OnRedirecting registers a callback fired after every successful redirect.
func (m *Manager) OnRedirecting(fn RedirectingFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRedirecting = append(m.onRedirecting, fn)
}

// OnLoading registers a callback fired on every intercepted load attempt.
func (m *Manager) OnLoading(fn LoadingFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLoading = append(m.onLoading, fn)
}

// AddFileRedirection registers a single file redirect. If the manager has
// already been optimised this triggers a full rebuild and recompile;
// otherwise the entry is applied directly to the live build-mode tree.
func (m *Manager) AddFileRedirection(oldPath, newDirectory, newFileName string, isDirectory bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := fileEntry{
		oldPath: pathnorm.Normalize(oldPath),
		newDir:  pathnorm.TrimTrailingSeparator(pathnorm.Normalize(newDirectory)),
		newFile: pathnorm.Normalize(newFileName),
		isDir:   isDirectory,
	}
	m.fileRedirections = append(m.fileRedirections, entry)

	if m.usingLookupTree {
		m.rebuildLocked()
		return
	}
	m.applyFileLocked(entry)
}

// AddFolderRedirection scans targetFolder on disk and registers it as an
// overlay over sourceFolder. If the manager has already been optimised
// this rebuilds; otherwise the folder is merged into the live tree and
// every file-level redirect is re-applied afterward so individual files
// still win over the folder overlay they sit inside.
func (m *Manager) AddFolderRedirection(sourceFolder, targetFolder string) error {
	fr, err := folder.New(sourceFolder, targetFolder)
	if err != nil {
		return redirerr.New(redirerr.OpRedirectFolder, sourceFolder, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.folderRedirections = append(m.folderRedirections, fr)

	if m.usingLookupTree {
		m.rebuildLocked()
		return nil
	}

	m.tree.AddFolderOverlay(fr.SourceFolder, fr)
	for _, fe := range m.fileRedirections {
		m.applyFileLocked(fe)
	}
	return nil
}

func (m *Manager) applyFileLocked(fe fileEntry) {
	m.tree.AddFile(fe.oldPath, fe.newDir, fe.newFile, fe.isDir)
}

// RemoveFileRedirection removes every file redirect registered for oldPath
// and does a full rebuild, per spec: in-place removal is not supported.
func (m *Manager) RemoveFileRedirection(oldPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pathnorm.Normalize(oldPath)
	kept := m.fileRedirections[:0]
	for _, fe := range m.fileRedirections {
		if fe.oldPath != key {
			kept = append(kept, fe)
		}
	}
	m.fileRedirections = kept
	m.rebuildLocked()
}

// RemoveFolderRedirection removes the folder overlay registered for
// sourceFolder and does a full rebuild.
func (m *Manager) RemoveFolderRedirection(sourceFolder string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pathnorm.TrimTrailingSeparator(pathnorm.Normalize(sourceFolder))
	kept := m.folderRedirections[:0]
	for _, fr := range m.folderRedirections {
		if fr.SourceFolder != key {
			kept = append(kept, fr)
		}
	}
	m.folderRedirections = kept
	m.rebuildLocked()
}

// rebuildLocked discards the current tree, replays every folder overlay
// then every file redirect in registration order (so files still win),
// and recompiles to a LookupTree if the manager had already been
// optimised. Callers must hold m.mu.
func (m *Manager) rebuildLocked() {
	fresh := redirtree.New()
	for _, fr := range m.folderRedirections {
		fresh.AddFolderOverlay(fr.SourceFolder, fr)
	}
	for _, fe := range m.fileRedirections {
		fresh.AddFile(fe.oldPath, fe.newDir, fe.newFile, fe.isDir)
	}
	m.tree = fresh

	if m.usingLookupTree {
		m.lookup.Store(lookuptree.Compile(fresh))
	}
}

// Optimise compiles the current RedirectionTree into a LookupTree and
// publishes it atomically; in-flight readers keep seeing the previous
// tree until this store completes.
func (m *Manager) Optimise() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookup.Store(lookuptree.Compile(m.tree))
	m.usingLookupTree = true
}

// TryGetFolder resolves a directory path against the published LookupTree,
// for callers (the enumeration merger) that need the whole inner map
// rather than a single file.
func (m *Manager) TryGetFolder(path string) (*spandict.SpanDict[target.Target], bool) {
	if !m.enabled.Load() {
		return nil, false
	}
	lt := m.lookup.Load()
	if lt == nil {
		return nil, false
	}
	stripped, _ := pathnorm.StripNTPrefix(pathnorm.Normalize(path))
	return lt.TryGetFolder(stripped)
}

// Redirect resolves path against the published LookupTree, firing Loading
// unconditionally and Redirecting on a hit. It returns the rewritten path
// reapplying the \??\ device prefix if the input carried one, and whether
// a redirect occurred. Both callbacks fire without holding m.mu, so a
// callback that re-enters the manager cannot deadlock.
func (m *Manager) Redirect(path string) (string, bool) {
	correlationID := uuid.New()
	m.fireLoading(correlationID, path)

	if !m.enabled.Load() {
		return path, false
	}

	lt := m.lookup.Load()
	if lt == nil {
		return path, false
	}

	stripped, hadPrefix := pathnorm.StripNTPrefix(pathnorm.Normalize(path))
	tgt, ok := lt.TryGetFile(stripped)
	if !ok {
		return path, false
	}

	newPath := tgt.Directory + pathnorm.Separator + tgt.FileName
	if hadPrefix {
		newPath = pathnorm.ApplyNTPrefix(newPath)
	}

	m.fireRedirecting(correlationID, path, newPath)
	return newPath, true
}

func (m *Manager) fireRedirecting(id uuid.UUID, oldPath, newPath string) {
	m.mu.Lock()
	callbacks := append([]RedirectingFunc(nil), m.onRedirecting...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(id, oldPath, newPath)
	}
}

func (m *Manager) fireLoading(id uuid.UUID, path string) {
	m.mu.Lock()
	callbacks := append([]LoadingFunc(nil), m.onLoading...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(id, path)
	}
}

// WatchFolderRedirection registers the folder overlay like
// AddFolderRedirection, then starts (or extends) an fsnotify watch over
// targetFolder so an on-disk change triggers an automatic rescan and
// rebuild instead of requiring the host to poll.
func (m *Manager) WatchFolderRedirection(sourceFolder, targetFolder string) error {
	if err := m.AddFolderRedirection(sourceFolder, targetFolder); err != nil {
		return err
	}

	m.mu.Lock()
	if m.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			m.mu.Unlock()
			return redirerr.New(redirerr.OpRedirectFolder, targetFolder, err)
		}
		m.watcher = w
		m.watchDone = make(chan struct{})
		go m.watchLoop(w, m.watchDone)
	}
	watcher := m.watcher
	m.mu.Unlock()

	return addWatchRecursive(watcher, targetFolder)
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func (m *Manager) watchLoop(w *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Debug("overlay change detected: %s", event)
			m.reloadFolders()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

func (m *Manager) reloadFolders() {
	m.mu.Lock()
	folders := append([]*folder.FolderRedirection(nil), m.folderRedirections...)
	m.mu.Unlock()

	rescanned := make([]*folder.FolderRedirection, 0, len(folders))
	for _, fr := range folders {
		nfr, err := folder.New(fr.SourceFolder, fr.TargetFolder)
		if err != nil {
			logger.Warn("rescan failed for %s: %v", fr.TargetFolder, err)
			rescanned = append(rescanned, fr)
			continue
		}
		rescanned = append(rescanned, nfr)
	}

	m.mu.Lock()
	m.folderRedirections = rescanned
	m.rebuildLocked()
	m.mu.Unlock()
}

// Close stops the live-reload watcher, if one was started. Safe to call
// even if WatchFolderRedirection was never used.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.watcher
	done := m.watchDone
	m.watcher = nil
	m.watchDone = nil
	m.mu.Unlock()

	if w == nil {
		return nil
	}
	close(done)
	return w.Close()
}
