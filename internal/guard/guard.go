// Package guard implements the per-thread recursion guard the concurrency
// model requires: one per hooked syscall family, so a thread that
// re-enters the same hook while already inside it (some NT calls layer on
// others) defers to the original syscall without redirection instead of
// recursing.
package guard

import "sync/atomic"

// unlocked is the sentinel value meaning no thread currently owns the guard.
// Native thread ids are always non-zero, so 0 never collides with a real
// owner.
const unlocked = 0

// Guard is a single-slot latch storing the native thread id of whichever
// thread currently holds it. Acquire via compare-and-swap, release via a
// plain CAS back to unlocked — no kernel wait is ever involved, per the
// wait-free requirement on the fast path.
type Guard struct {
	owner atomic.Uint32
}

// Enter marks one hook call's entry for threadID. reentrant is true when
// threadID already owned the guard — a nested entry into the same hooked
// API from the same thread (some NT calls layer on others) — and the
// caller must defer to the original syscall without redirection. acquired
// is true only when this call newly took ownership of the guard; the
// caller must pair that, and only that, with a matching Exit. A reentrant
// call must never call Exit: doing so would release the outer frame's
// ownership while it is still executing.
func (g *Guard) Enter(threadID uint32) (reentrant, acquired bool) {
	if g.owner.Load() == threadID {
		return true, false
	}
	return false, g.owner.CompareAndSwap(unlocked, threadID)
}

// Exit releases the guard if threadID currently owns it. Only call this
// after an Enter that reported acquired == true.
func (g *Guard) Exit(threadID uint32) {
	g.owner.CompareAndSwap(threadID, unlocked)
}

// Family groups one Guard per hooked NT syscall family: create, open,
// delete, query-directory (shared between standard and extended),
// query-attrs, query-full-attrs.
type Family struct {
	Create          Guard
	Open            Guard
	Delete          Guard
	QueryDirectory  Guard
	QueryAttributes Guard
	QueryFullAttrs  Guard
}
