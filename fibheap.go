// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import "fmt"

// maxDegree bounds the consolidation scratch table. A node's degree is
// logarithmic in heap size, so 64 is unreachable for any heap that fits
// in memory; exceeding it means the heap's internal invariants have been
// broken by something other than this package, and we panic rather than
// silently truncate.
const maxDegree = 64

// Handle identifies a node inside a FibHeap's arena. It is returned by
// Insert and consumed by DecreasePriority. Handles are arena indices
// starting at zero; noHandle (-1) means "no node".
type Handle int

const noHandle Handle = -1

// heapCell is one node of the heap. Sibling, parent, and child
// relationships are expressed as Handles (arena indices) rather than
// pointers, so the heap's internal tree-of-trees never aliases with
// whatever the caller keeps on its own payload (see SPEC_FULL.md §3).
type heapCell[T any] struct {
	payload  T
	priority float64

	parent, child Handle
	next, prev    Handle // sibling ring, circular and doubly linked

	degree int
	marked bool
}

// FibHeap is a mergeable min-priority queue supporting insert,
// decrease-key, and pop-min in amortized O(1), O(1), and O(log n) time
// respectively. It is not safe for concurrent use.
//
// The zero value is not ready to use; construct with NewFibHeap.
type FibHeap[T any] struct {
	cells    []heapCell[T]
	freeList []Handle
	min      Handle
	size     int
}

// NewFibHeap returns an empty heap ready for use.
func NewFibHeap[T any]() *FibHeap[T] {
	return &FibHeap[T]{min: noHandle}
}

// Empty reports whether the heap holds no nodes.
func (f *FibHeap[T]) Empty() bool { return f.min == noHandle }

// Len returns the number of nodes currently in the heap.
func (f *FibHeap[T]) Len() int { return f.size }

func (f *FibHeap[T]) at(h Handle) *heapCell[T] { return &f.cells[h] }

// Insert adds payload at the given priority and returns a handle for
// later use with DecreasePriority. Insert runs in amortized O(1).
func (f *FibHeap[T]) Insert(payload T, priority float64) Handle {
	h := f.alloc(payload, priority)
	f.min = f.mergeRings(f.min, h)
	f.size++
	return h
}

func (f *FibHeap[T]) alloc(payload T, priority float64) Handle {
	var h Handle
	if n := len(f.freeList); n > 0 {
		h = f.freeList[n-1]
		f.freeList = f.freeList[:n-1]
	} else {
		h = Handle(len(f.cells))
		f.cells = append(f.cells, heapCell[T]{})
	}
	c := f.at(h)
	*c = heapCell[T]{
		payload:  payload,
		priority: priority,
		parent:   noHandle,
		child:    noHandle,
		next:     h,
		prev:     h,
	}
	return h
}

// GetMin returns the payload and priority of the minimum node without
// removing it. The third return value is false on an empty heap.
func (f *FibHeap[T]) GetMin() (payload T, priority float64, ok bool) {
	if f.min == noHandle {
		return payload, 0, false
	}
	c := f.at(f.min)
	return c.payload, c.priority, true
}

// Priority returns the current priority of the node identified by h.
func (f *FibHeap[T]) Priority(h Handle) float64 { return f.at(h).priority }

// Payload returns the payload stored at h.
func (f *FibHeap[T]) Payload(h Handle) T { return f.at(h).payload }

// PopMin removes and returns the minimum node. ok is false if the heap
// is empty. PopMin runs in amortized O(log n).
func (f *FibHeap[T]) PopMin() (payload T, priority float64, ok bool) {
	if f.min == noHandle {
		return payload, 0, false
	}
	minH := f.min
	minC := f.at(minH)
	payload, priority = minC.payload, minC.priority
	f.size--

	if minC.next == minH {
		f.min = noHandle
	} else {
		f.at(minC.prev).next = minC.next
		f.at(minC.next).prev = minC.prev
		f.min = minC.next
	}

	if child := minC.child; child != noHandle {
		for cur := child; ; {
			f.at(cur).parent = noHandle
			cur = f.at(cur).next
			if cur == child {
				break
			}
		}
		f.min = f.mergeRings(f.min, child)
	}

	f.freeCell(minH)

	if f.min != noHandle {
		f.consolidate()
	}
	return payload, priority, true
}

func (f *FibHeap[T]) freeCell(h Handle) {
	var zero heapCell[T]
	*f.at(h) = zero
	f.cells[h].next, f.cells[h].prev = noHandle, noHandle
	f.freeList = append(f.freeList, h)
}

// consolidate merges roots of equal degree until every remaining root
// has a distinct degree, then reselects the minimum root. Invoked after
// every PopMin that leaves the heap non-empty.
func (f *FibHeap[T]) consolidate() {
	var table [maxDegree]Handle
	for i := range table {
		table[i] = noHandle
	}

	start := f.min
	visit := make([]Handle, 0, 8)
	for cur := start; ; {
		visit = append(visit, cur)
		cur = f.at(cur).next
		if cur == start {
			break
		}
	}

	for _, start := range visit {
		cur := start
		for {
			d := f.at(cur).degree
			if d >= maxDegree {
				panic(fmt.Sprintf("fibksp: fibonacci heap node degree reached MAX_DEGREE (%d); heap invariant violated", maxDegree))
			}
			other := table[d]
			if other == noHandle {
				table[d] = cur
				break
			}
			table[d] = noHandle

			var lo, hi Handle
			if f.at(other).priority < f.at(cur).priority {
				lo, hi = other, cur
			} else {
				lo, hi = cur, other
			}

			f.unlink(hi)
			hc := f.at(hi)
			hc.next, hc.prev = hi, hi
			hc.parent = lo
			hc.marked = false

			loC := f.at(lo)
			loC.child = f.mergeRings(loC.child, hi)
			loC.degree++

			cur = lo
		}
		if f.at(cur).priority <= f.at(f.min).priority {
			f.min = cur
		}
	}
}

// DecreasePriority lowers the priority of the node identified by h to p.
// It panics if p is not strictly less than the node's current priority,
// the same precondition violation the spec assigns to this operation;
// h must currently be a member of this heap.
func (f *FibHeap[T]) DecreasePriority(h Handle, p float64) {
	c := f.at(h)
	if p >= c.priority {
		panic(ErrDecreaseKeyIncreases)
	}
	c.priority = p
	if c.parent != noHandle && c.priority <= f.at(c.parent).priority {
		f.cut(h)
	}
	if f.min == noHandle || c.priority <= f.at(f.min).priority {
		f.min = h
	}
}

// cut detaches h from its parent's child ring, moves it to the root
// ring, and applies a cascading cut upward: an unmarked parent is
// marked and the cut stops; an already-marked parent is cut in turn.
func (f *FibHeap[T]) cut(h Handle) {
	c := f.at(h)
	c.marked = false
	parent := c.parent
	if parent == noHandle {
		return
	}

	if c.next != h {
		f.unlink(h)
	}
	pc := f.at(parent)
	if pc.child == h {
		if c.next != h {
			pc.child = c.next
		} else {
			pc.child = noHandle
		}
	}
	pc.degree--

	c.next, c.prev = h, h
	f.min = f.mergeRings(f.min, h)

	if pc.marked {
		f.cut(parent)
	} else {
		pc.marked = true
	}
	c.parent = noHandle
}

// unlink removes h from the ring it currently belongs to by bridging
// its two neighbors. The caller is responsible for leaving h a
// self-looped singleton afterward if that's the desired end state.
func (f *FibHeap[T]) unlink(h Handle) {
	c := f.at(h)
	if c.next == h {
		return
	}
	f.at(c.prev).next = c.next
	f.at(c.next).prev = c.prev
}

// mergeRings splices two disjoint circular rings identified by any one
// member of each (either argument, or both, may be noHandle) and
// returns a member of the combined ring — specifically whichever of a
// and b has the smaller priority, which is enough to keep a root ring's
// min pointer correct across a splice.
func (f *FibHeap[T]) mergeRings(a, b Handle) Handle {
	if a == noHandle {
		return b
	}
	if b == noHandle {
		return a
	}
	ca, cb := f.at(a), f.at(b)
	aNext := ca.next
	ca.next = cb.next
	f.at(ca.next).prev = a
	cb.next = aNext
	f.at(cb.next).prev = b

	if cb.priority < ca.priority {
		return b
	}
	return a
}

// Clear drops every node from the heap, releasing references to their
// payloads so an owning heap (one holding pointers it's responsible
// for, such as KShortestPaths' candidate heap) doesn't keep discarded
// payloads reachable.
func (f *FibHeap[T]) Clear() {
	f.cells = nil
	f.freeList = nil
	f.min = noHandle
	f.size = 0
}
