// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import "math"

// ShortestPath finds the single shortest path from s to t, honoring
// vertex usability and current arc weights. It returns nil if t is
// unreachable from s.
func (g *Graph[P]) ShortestPath(s, t VertexID) (*Path[P], error) {
	if err := g.checkVertex(s); err != nil {
		return nil, err
	}
	if err := g.checkVertex(t); err != nil {
		return nil, err
	}
	return g.dijkstraPath(s, t), nil
}

// dijkstraPath runs Dijkstra from s to t and builds the resulting Path,
// or returns nil if t was not reached. s and t are assumed valid and
// usable; callers that accept ids from outside the package validate
// them first (see ShortestPath, KShortestPaths).
func (g *Graph[P]) dijkstraPath(s, t VertexID) *Path[P] {
	dist, reached := g.runDijkstra(s, t)
	if !reached {
		return nil
	}
	return g.buildPath(s, t, dist)
}

// runDijkstra computes single-source shortest distances from s,
// stopping as soon as t is settled (or known unreachable). On return,
// every usable vertex's pathArc holds its predecessor arc on the
// relaxed tree rooted at s; the scratch heap is empty.
func (g *Graph[P]) runDijkstra(s, t VertexID) (dist float64, reached bool) {
	g.scratch.Clear()
	defer g.scratch.Clear()
	for i := range g.vertices {
		v := &g.vertices[i]
		v.pathArc = nil
		if g.isUsable(VertexID(i)) {
			v.handle = g.scratch.Insert(VertexID(i), math.Inf(1))
		}
	}
	g.scratch.DecreasePriority(g.vertices[s].handle, 0)

	for {
		u, d, ok := g.scratch.PopMin()
		if !ok {
			return 0, false // heap exhausted: t unreachable
		}
		if math.IsInf(d, 1) {
			return 0, false
		}
		if u == t {
			return d, true
		}
		uv := &g.vertices[u]
		for a := uv.firstArc; a != nil; a = a.next {
			if !g.isUsable(a.Head) {
				continue
			}
			vv := &g.vertices[a.Head]
			w := d + a.Weight
			if w < g.scratch.Priority(vv.handle) {
				g.scratch.DecreasePriority(vv.handle, w)
				vv.pathArc = a
			}
		}
	}
}

// buildPath walks pathArc predecessors from t back to s, reversing them
// into a Path via repeated push-front, per spec.
func (g *Graph[P]) buildPath(s, t VertexID, dist float64) *Path[P] {
	p := NewPath[P]()
	cumWeight := dist
	cur := t
	for cur != s {
		v := &g.vertices[cur]
		a := v.pathArc
		p.pushFront(a, cumWeight)
		cumWeight -= a.Weight
		cur = a.Tail
	}
	return p
}
