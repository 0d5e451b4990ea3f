// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import (
	"fmt"
	"strings"
)

// String renders p as "id0 -> id1(w1) -> id2(w2) -> ...", where wi is
// the cumulative weight after arc i. It is illustrative only, meant for
// logs, not part of the package's normative interface.
func (p *Path[P]) String() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d", p.first.arc.Tail)
	for n := p.first; n != nil; n = n.next {
		fmt.Fprintf(&b, " -> %d(%g)", n.arc.Head, n.weight)
	}
	return b.String()
}

// String renders v as "Vertex <id>(<incoming-path-arc-weight or -1>)",
// where the weight is that of the predecessor arc left by the most
// recent Dijkstra pass to touch v, or -1 if it has none.
func (v *Vertex[P]) String() string {
	w := -1.0
	if v.pathArc != nil {
		w = v.pathArc.Weight
	}
	return fmt.Sprintf("Vertex %d(%g)", v.ID, w)
}
