// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

// pathNode is one element of a Path: the arc taken, and the cumulative
// weight of the path from its start through the end of that arc.
type pathNode[P any] struct {
	arc    *Arc[P]
	weight float64

	next, prev *pathNode[P]
}

// Path is an ordered sequence of arcs where each consecutive pair
// (a, b) satisfies a.Head == b.Tail. An empty path has weight 0.
type Path[P any] struct {
	first, last *pathNode[P]
	length      int
	weight      float64
}

// NewPath returns an empty path.
func NewPath[P any]() *Path[P] { return &Path[P]{} }

// Len returns the number of arcs in the path.
func (p *Path[P]) Len() int { return p.length }

// Weight returns the path's total weight: the cumulative weight of its
// last node, or zero for an empty path.
func (p *Path[P]) Weight() float64 { return p.weight }

// Empty reports whether the path has no arcs.
func (p *Path[P]) Empty() bool { return p.first == nil }

// pushFront prepends an arc with the given cumulative weight.
func (p *Path[P]) pushFront(a *Arc[P], cumWeight float64) {
	n := &pathNode[P]{arc: a, weight: cumWeight}
	if p.first == nil {
		p.first, p.last = n, n
	} else {
		n.next = p.first
		p.first.prev = n
		p.first = n
	}
	p.length++
	p.weight = p.last.weight
}

// pushBack appends an arc with the given cumulative weight.
func (p *Path[P]) pushBack(a *Arc[P], cumWeight float64) {
	n := &pathNode[P]{arc: a, weight: cumWeight}
	if p.last == nil {
		p.first, p.last = n, n
	} else {
		n.prev = p.last
		p.last.next = n
		p.last = n
	}
	p.length++
	p.weight = p.last.weight
}

// rootPath returns a deep copy of the prefix of p consisting of every
// node strictly before end. Cumulative weights are copied as-is.
func (p *Path[P]) rootPath(end *pathNode[P]) *Path[P] {
	r := &Path[P]{}
	for n := p.first; n != nil && n != end; n = n.next {
		r.pushBack(n.arc, n.weight)
	}
	return r
}

// nextNode walks p and root in lockstep. If every arc of root matches
// the corresponding arc of p, nextNode returns the node of p
// immediately following that shared prefix. It returns nil if p is not
// an extension of root or the two paths diverge.
func (p *Path[P]) nextNode(root *Path[P]) *pathNode[P] {
	pn := p.first
	for rn := root.first; rn != nil; rn = rn.next {
		if pn == nil || pn.arc != rn.arc {
			return nil
		}
		pn = pn.next
	}
	return pn
}

// mergeDelete concatenates other's nodes after p, re-basing each of
// other's cumulative weights onto p's terminal weight, and empties
// other — ownership of its nodes moves into p. If p is empty, p simply
// adopts other's list.
func (p *Path[P]) mergeDelete(other *Path[P]) {
	if p.first == nil {
		*p = *other
		*other = Path[P]{}
		return
	}
	base := p.weight
	for n := other.first; n != nil; n = n.next {
		n.weight += base
	}
	if other.first != nil {
		other.first.prev = p.last
		p.last.next = other.first
		p.last = other.last
		p.length += other.length
		p.weight = p.last.weight
	}
	*other = Path[P]{}
}

// enableNodes sets usable = flag on the tail of every arc in the path,
// and on the head of every arc except the path's last — the KSP spur
// vertex, which must stay usable regardless.
func (p *Path[P]) enableNodes(g *Graph[P], flag bool) {
	for n := p.first; n != nil; n = n.next {
		g.setUsable(n.arc.Tail, flag)
		if n != p.last {
			g.setUsable(n.arc.Head, flag)
		}
	}
}

// Arcs returns the path's arcs in order, for callers that want to
// inspect the route without reaching into package internals.
func (p *Path[P]) Arcs() []*Arc[P] {
	arcs := make([]*Arc[P], 0, p.length)
	for n := p.first; n != nil; n = n.next {
		arcs = append(arcs, n.arc)
	}
	return arcs
}
