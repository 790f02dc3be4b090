// File: internal/native/journal.go
// Package native: bounded journal of recent allocation events.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package native

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/corebridge/api"
)

// journalCapacity bounds the retained event window.
const journalCapacity = 256

// journalBuf records the most recent acquire/release events. It is an
// accounting aid for debugging and leak tests, never part of the ownership
// protocol itself.
type journalBuf struct {
	mu  sync.Mutex
	q   *queue.Queue
	seq uint64
}

var journal = &journalBuf{q: queue.New()}

func (j *journalBuf) record(kind api.AllocKind, addr uintptr, size int) {
	j.mu.Lock()
	j.seq++
	j.q.Add(api.AllocEvent{Kind: kind, Addr: addr, Size: size, Seq: j.seq})
	for j.q.Length() > journalCapacity {
		j.q.Remove()
	}
	j.mu.Unlock()
}

// Journal snapshots the retained event window, oldest first.
func Journal() []api.AllocEvent {
	journal.mu.Lock()
	defer journal.mu.Unlock()
	out := make([]api.AllocEvent, 0, journal.q.Length())
	for i := 0; i < journal.q.Length(); i++ {
		out = append(out, journal.q.Get(i).(api.AllocEvent))
	}
	return out
}
