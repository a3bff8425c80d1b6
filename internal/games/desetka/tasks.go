package desetka

import (
	"sort"
	"time"
)

// taskKind names a delayed continuation.
type taskKind int

const (
	taskFinishSpawn taskKind = iota // Settle a spawn interrupted by a detonation
	taskSettleHint                  // Re-hint after a match, auto-shuffle if stuck
	taskAutoShuffle                 // Run the deadlock breaker
	taskHint                        // Plain re-hint
)

type task struct {
	kind      taskKind
	remaining time.Duration
}

// taskQueue holds continuations that run after a delay of frame time.
type taskQueue struct {
	items []task
}

func (q *taskQueue) schedule(kind taskKind, after time.Duration) {
	q.items = append(q.items, task{kind: kind, remaining: after})
}

// advance counts dt off every task and returns the ones that came due,
// earliest deadline first.
func (q *taskQueue) advance(dt time.Duration) []taskKind {
	var due []task
	kept := q.items[:0]
	for _, t := range q.items {
		if t.remaining <= dt {
			due = append(due, t)
			continue
		}
		t.remaining -= dt
		kept = append(kept, t)
	}
	q.items = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].remaining < due[j].remaining })
	kinds := make([]taskKind, len(due))
	for i, t := range due {
		kinds[i] = t.kind
	}
	return kinds
}

func (q *taskQueue) pending(kind taskKind) bool {
	for _, t := range q.items {
		if t.kind == kind {
			return true
		}
	}
	return false
}

// cancel drops every task of the given kind and reports whether any existed.
func (q *taskQueue) cancel(kind taskKind) bool {
	found := false
	kept := q.items[:0]
	for _, t := range q.items {
		if t.kind == kind {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	q.items = kept
	return found
}

func (q *taskQueue) clear() {
	q.items = nil
}

func (q *taskQueue) len() int {
	return len(q.items)
}
