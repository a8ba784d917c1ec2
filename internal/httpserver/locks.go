// internal/httpserver/locks.go
//
// Per-session serialization. A guess is a read-modify-write of the stored
// game (Get → Submit → Save); two guesses racing on the same session must not
// both read the same state and overwrite each other's attempt.

package httpserver

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// sessionLocks is a fixed set of mutexes striped by session ID. Distinct
// sessions may share a stripe; that only costs throughput, never correctness.
type sessionLocks struct {
	mu [lockStripes]sync.Mutex
}

// lock acquires the stripe for sid and returns its unlock func.
func (l *sessionLocks) lock(sid string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sid))
	m := &l.mu[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
