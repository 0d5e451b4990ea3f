// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import (
	"fmt"
	"math"

	"github.com/soniakeys/bits"
)

// VertexID is a dense, non-negative node id assigned at graph
// construction and usable as a slice index, the same convention the
// teacher package uses for its node ids.
type VertexID int

// Arc is a directed weighted edge from Tail to Head, carrying an opaque
// user Payload. Arcs are owned by their Tail vertex and organized there
// as a singly linked list; enumeration order within that list is
// unspecified but stable within one Dijkstra pass.
type Arc[P any] struct {
	Tail, Head VertexID
	Weight     float64
	Payload    P

	next *Arc[P] // next arc in Tail's outgoing list
}

// Vertex holds the transient working state written by Dijkstra: a head
// pointer to its outgoing arcs, and the predecessor arc on whatever
// shortest-path tree the most recent search built. Usability lives on
// the owning Graph, not here, so it can be represented as a bitset.
type Vertex[P any] struct {
	ID       VertexID
	firstArc *Arc[P]

	pathArc *Arc[P] // predecessor arc on the current Dijkstra tree
	handle  Handle  // this vertex's cell in the Graph's scratch heap
}

type removedArc[P any] struct {
	arc    *Arc[P]
	weight float64
}

// Graph owns a fixed-size vector of vertices and the scratch state
// Dijkstra and KShortestPaths share across calls: a reusable Fibonacci
// heap and a removal list used to roll back soft-removed arcs.
//
// A Graph is not safe for concurrent queries: ShortestPath and
// KShortestPaths mutate per-vertex scratch fields and the usability
// bitset, and must be run consecutively, never concurrently, on one
// Graph.
type Graph[P any] struct {
	vertices []Vertex[P]
	usable   bits.Bits
	removals []removedArc[P]
	scratch  *FibHeap[VertexID]
}

// NewGraph constructs an empty directed graph with vertices 0..n-1 and
// no arcs. n must be non-negative.
func NewGraph[P any](n int) *Graph[P] {
	if n < 0 {
		panic(fmt.Sprintf("fibksp: NewGraph: negative size %d", n))
	}
	vs := make([]Vertex[P], n)
	for i := range vs {
		vs[i] = Vertex[P]{ID: VertexID(i)}
	}
	u := bits.New(n)
	for i := 0; i < n; i++ {
		u.SetBit(i, 1)
	}
	return &Graph[P]{
		vertices: vs,
		usable:   u,
		scratch:  NewFibHeap[VertexID](),
	}
}

// Order returns the number of vertices in the graph.
func (g *Graph[P]) Order() int { return len(g.vertices) }

func (g *Graph[P]) checkVertex(id VertexID) error {
	if id < 0 || int(id) >= len(g.vertices) {
		return ErrVertexRange
	}
	return nil
}

// AddArc prepends a new arc s->t of the given weight and payload to s's
// outgoing list. Parallel arcs are permitted and never de-duplicated.
func (g *Graph[P]) AddArc(s, t VertexID, weight float64, payload P) (*Arc[P], error) {
	if weight < 0 {
		return nil, ErrNegativeWeight
	}
	if err := g.checkVertex(s); err != nil {
		return nil, err
	}
	if err := g.checkVertex(t); err != nil {
		return nil, err
	}
	sv := &g.vertices[s]
	a := &Arc[P]{Tail: s, Head: t, Weight: weight, Payload: payload, next: sv.firstArc}
	sv.firstArc = a
	return a, nil
}

// RemoveArc soft-removes a, recording its current weight so
// RestoreRemovals can put it back, and sets its weight to +Inf so no
// Dijkstra pass run before the restoration will traverse it profitably.
func (g *Graph[P]) RemoveArc(a *Arc[P]) {
	g.removals = append(g.removals, removedArc[P]{arc: a, weight: a.Weight})
	a.Weight = math.Inf(1)
}

// RestoreRemovals restores every arc recorded by RemoveArc since the
// last call to its original weight, and clears the removal list.
func (g *Graph[P]) RestoreRemovals() {
	for _, r := range g.removals {
		r.arc.Weight = r.weight
	}
	g.removals = g.removals[:0]
}

func (g *Graph[P]) setUsable(id VertexID, usable bool) {
	v := 0
	if usable {
		v = 1
	}
	g.usable.SetBit(int(id), v)
}

func (g *Graph[P]) isUsable(id VertexID) bool {
	return g.usable.Bit(int(id)) != 0
}
