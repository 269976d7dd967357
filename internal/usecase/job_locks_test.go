package usecase

import (
	"sync"
	"testing"
)

func TestJobLocks_SerializesSameJob(t *testing.T) {
	locks := newJobLocks()

	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			release := locks.acquire("j-1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d increments, got %d", workers, counter)
	}
}

func TestJobLocks_ReleasesEntries(t *testing.T) {
	locks := newJobLocks()

	release := locks.acquire("j-1")
	release()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	if len(locks.locks) != 0 {
		t.Fatalf("expected lock map cleared, got %d entries", len(locks.locks))
	}
}

func TestJobLocks_IndependentJobsDoNotBlock(t *testing.T) {
	locks := newJobLocks()

	release1 := locks.acquire("j-1")
	defer release1()

	done := make(chan struct{})
	go func() {
		release2 := locks.acquire("j-2")
		release2()
		close(done)
	}()

	<-done
}
