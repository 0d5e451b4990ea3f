// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathPushFrontBack(t *testing.T) {
	a := &Arc[string]{Tail: 0, Head: 1, Weight: 2}
	b := &Arc[string]{Tail: 1, Head: 2, Weight: 3}

	p := NewPath[string]()
	require.True(t, p.Empty())
	p.pushBack(a, 2)
	p.pushBack(b, 5)
	require.Equal(t, 2, p.Len())
	require.Equal(t, 5.0, p.Weight())

	q := NewPath[string]()
	q.pushFront(b, 5)
	q.pushFront(a, 2)
	require.Equal(t, []*Arc[string]{a, b}, q.Arcs())
}

func TestPathRootPathAndNextNode(t *testing.T) {
	a := &Arc[string]{Tail: 0, Head: 1, Weight: 1}
	b := &Arc[string]{Tail: 1, Head: 2, Weight: 1}
	c := &Arc[string]{Tail: 2, Head: 3, Weight: 1}

	p := NewPath[string]()
	p.pushBack(a, 1)
	p.pushBack(b, 2)
	p.pushBack(c, 3)

	root := p.rootPath(p.last) // prefix strictly before the final node
	require.Equal(t, 2, root.Len())
	require.Equal(t, []*Arc[string]{a, b}, root.Arcs())

	n := p.nextNode(root)
	require.NotNil(t, n)
	require.Equal(t, c, n.arc)

	other := NewPath[string]()
	other.pushBack(a, 1)
	other.pushBack(&Arc[string]{Tail: 1, Head: 4, Weight: 9}, 10)
	require.Nil(t, other.nextNode(root))
}

func TestPathMergeDeleteEmptyPrefix(t *testing.T) {
	a := &Arc[string]{Tail: 0, Head: 1, Weight: 4}
	other := NewPath[string]()
	other.pushBack(a, 4)

	p := NewPath[string]()
	p.mergeDelete(other)

	require.Equal(t, 1, p.Len())
	require.Equal(t, 4.0, p.Weight())
	require.True(t, other.Empty())
}

func TestPathMergeDeleteRebasesWeights(t *testing.T) {
	a := &Arc[string]{Tail: 0, Head: 1, Weight: 2}
	b := &Arc[string]{Tail: 1, Head: 2, Weight: 3}

	p := NewPath[string]()
	p.pushBack(a, 2)

	other := NewPath[string]()
	other.pushBack(b, 3)

	p.mergeDelete(other)
	require.Equal(t, 2, p.Len())
	require.Equal(t, 5.0, p.Weight())
	require.True(t, other.Empty())
}

func TestPathEnableNodes(t *testing.T) {
	g := NewGraph[string](3)
	g.AddArc(0, 1, 1, "")
	g.AddArc(1, 2, 1, "")

	a := &Arc[string]{Tail: 0, Head: 1, Weight: 1}
	b := &Arc[string]{Tail: 1, Head: 2, Weight: 1}
	p := NewPath[string]()
	p.pushBack(a, 1)
	p.pushBack(b, 2)

	p.enableNodes(g, false)
	require.False(t, g.isUsable(0))
	require.False(t, g.isUsable(1))
	require.True(t, g.isUsable(2), "spur vertex (head of last node) must stay usable")

	p.enableNodes(g, true)
	require.True(t, g.isUsable(0))
	require.True(t, g.isUsable(1))
	require.True(t, g.isUsable(2))
}
