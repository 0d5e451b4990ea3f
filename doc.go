// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

// Package fibksp computes the K shortest loopless paths between two
// vertices of a directed, non-negatively weighted graph.
//
// The package is built from three layered pieces: a Fibonacci heap
// (FibHeap) used as a decrease-key priority queue, a single-source
// Dijkstra search built on top of it, and Yen's algorithm (KShortestPaths)
// layered over Dijkstra using a second Fibonacci heap to rank candidate
// paths.
//
// Graph I/O, text rendering beyond the illustrative String methods on
// Path and Vertex, GraphViz export, and any CLI are out of scope; this
// package consumes a graph built with AddArc and returns Path values.
//
// A Graph is not safe for concurrent queries. Searches on a single Graph
// must be run consecutively, never concurrently, because Dijkstra and
// KShortestPaths both use per-vertex scratch fields owned by the Graph.
package fibksp
