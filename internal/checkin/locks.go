package checkin

import "sync"

// eventLocks serializes the read-then-append sequence per event within this
// process. Entries are dropped once no caller holds or waits on them.
type eventLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newEventLocks() *eventLocks {
	return &eventLocks{locks: make(map[string]*refLock)}
}

// lock blocks until event is free and returns the matching unlock.
func (l *eventLocks) lock(event string) func() {
	l.mu.Lock()
	rl, ok := l.locks[event]
	if !ok {
		rl = &refLock{}
		l.locks[event] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.Lock()
	return func() {
		rl.Unlock()
		l.mu.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.locks, event)
		}
		l.mu.Unlock()
	}
}

func (l *eventLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
