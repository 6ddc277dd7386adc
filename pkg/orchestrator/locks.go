package orchestrator

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// jobLocks serializes message handling per job. Messages for different jobs
// proceed in parallel; two results for the same job never interleave, which
// keeps the completion check race-free.
type jobLocks struct {
	shards [lockShards]sync.Mutex
}

func (l *jobLocks) lock(jobID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	mu := &l.shards[h.Sum32()%lockShards]
	mu.Lock()
	return mu
}
