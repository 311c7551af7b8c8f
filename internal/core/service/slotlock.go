package service

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// slotLock serializes the check-then-insert sequence per partition key so two
// concurrent creates for the same facility/day cannot both pass the
// availability check. Striping bounds memory: distinct keys may share a
// stripe, which only costs contention, never correctness.
//
// This guards a single process. A multi-instance deployment needs a
// database-level exclusion constraint instead.
type slotLock struct {
	stripes [lockStripes]sync.Mutex
}

func (l *slotLock) lock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	m := &l.stripes[h.Sum32()%lockStripes]
	m.Lock()
	return m
}
