package router

import "sync"

// Outlet tracks the one entry currently mounted in a shell.
type Outlet struct {
	mu     sync.RWMutex
	active Entry
	mounts int
}

// Mount makes e the active entry, replacing whatever was mounted before.
// Mounting the entry that is already active does nothing and returns false.
func (o *Outlet) Mount(e Entry) (changed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.mounts > 0 && o.active.Pattern == e.Pattern {
		return false
	}

	o.active = e // the previous entry is dropped here
	o.mounts++
	return true
}

// Active returns the mounted entry, and false if nothing was mounted yet.
func (o *Outlet) Active() (Entry, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.active, o.mounts > 0
}

// Mounts is the number of mounts that actually changed the active entry.
func (o *Outlet) Mounts() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.mounts
}
