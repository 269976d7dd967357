package usecase

import "sync"

// jobLocks serializes mutation per job id. Assign, start, complete, and
// cancel each hold the job's lock for their whole read-compute-write span,
// so two concurrent calls on the same job never interleave.

type jobLocks struct {
	mu    sync.Mutex
	locks map[string]*jobLock
}

type jobLock struct {
	mu   sync.Mutex
	refs int
}

func newJobLocks() *jobLocks {
	return &jobLocks{locks: make(map[string]*jobLock)}
}

// acquire blocks until the job's lock is held and returns its release func.
func (l *jobLocks) acquire(jobID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[jobID]
	if !ok {
		entry = &jobLock{}
		l.locks[jobID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, jobID)
		}
		l.mu.Unlock()
	}
}
