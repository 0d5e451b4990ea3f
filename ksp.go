// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

// KShortestPaths finds up to k loopless paths from s to t in order of
// non-decreasing total weight, using Yen's algorithm over the spur/root
// decomposition. It returns the paths found (fewer than k if the graph
// is exhausted first) or an error if s or t is out of range.
//
// Parallel arcs between the same pair of vertices are treated as
// distinct arcs but the SAME loopless path when they share every other
// vertex: a spur search soft-removes every parallel arc to the next
// vertex, so only the cheapest of a set of parallel arcs appears in the
// results; see Scenario 5 in the accompanying documentation.
func (g *Graph[P]) KShortestPaths(s, t VertexID, k int) ([]*Path[P], error) {
	if err := g.checkVertex(s); err != nil {
		return nil, err
	}
	if err := g.checkVertex(t); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, nil
	}

	first := g.dijkstraPath(s, t)
	if first == nil {
		return nil, nil
	}
	a := []*Path[P]{first}

	candidates := NewFibHeap[*Path[P]]()
	defer candidates.Clear()

	// duplicate reports whether c has the same arc sequence as a path
	// already in a; the same candidate can be found by more than one round.
	duplicate := func(c *Path[P]) bool {
		for _, other := range a {
			x, y := other.first, c.first
			for x != nil && y != nil && x.arc == y.arc {
				x, y = x.next, y.next
			}
			if x == nil && y == nil {
				return true
			}
		}
		return false
	}

	for len(a) < k {
		prev := a[len(a)-1]
		g.spurAll(prev, a, candidates)

		cand, _, ok := candidates.PopMin()
		for ok && duplicate(cand) {
			cand, _, ok = candidates.PopMin()
		}
		if !ok {
			break
		}
		a = append(a, cand)
	}
	return a, nil
}

// spurAll runs one round of Yen's spur search: for every node of prev,
// treated as a spur point, it builds the root prefix, forbids its
// interior vertices and the arcs already used by any member of a
// sharing that prefix, runs Dijkstra from the spur vertex, and on
// success inserts the stitched candidate into the candidate heap.
func (g *Graph[P]) spurAll(prev *Path[P], a []*Path[P], candidates *FibHeap[*Path[P]]) {
	for end := prev.first; end != nil; end = end.next {
		g.spurOne(prev, end, a, candidates)
	}
}

// spurOne handles a single spur point (the node "end" of prev). It
// restores every soft-removed arc and re-enables every disabled vertex
// before returning, on every path including a panic unwinding through
// it, per the package's exception-safety requirement for spur
// computations.
func (g *Graph[P]) spurOne(prev *Path[P], end *pathNode[P], a []*Path[P], candidates *FibHeap[*Path[P]]) {
	root := prev.rootPath(end)
	root.enableNodes(g, false)
	defer root.enableNodes(g, true)
	defer g.RestoreRemovals()

	// end.arc is exactly prev's own next-arc-after-root, so the loop
	// below already soft-removes it via prev (prev is always a member of
	// a). Removing an arc twice would record its already-+Inf weight
	// as "original" and leave it corrupted after RestoreRemovals. Every
	// arc parallel to a next arc (same tail and head) is removed with it.
	removed := make(map[*Arc[P]]bool, len(a))
	for _, other := range a {
		n := other.nextNode(root)
		if n == nil {
			continue
		}
		for arc := g.vertices[n.arc.Tail].firstArc; arc != nil; arc = arc.next {
			if arc.Head == n.arc.Head && !removed[arc] {
				g.RemoveArc(arc)
				removed[arc] = true
			}
		}
	}

	spurVertex := end.arc.Tail
	t := g.lastVertexOf(prev)
	spur := g.dijkstraPath(spurVertex, t)
	if spur == nil {
		return
	}

	combined := root.rootPath(nil) // independent copy; root itself stays intact for the deferred enableNodes
	combined.mergeDelete(spur)
	candidates.Insert(combined, combined.Weight())
}

// lastVertexOf returns the terminal vertex of a non-empty path.
func (g *Graph[P]) lastVertexOf(p *Path[P]) VertexID {
	return p.last.arc.Head
}
