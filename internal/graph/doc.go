// Package graph builds an in-memory graph from an arbitrary collection of host
// records and answers structural and shortest-path queries over it.
//
// # Why Graph Package Exists
//
// Hosts already have their own records (config entries, cities, services)
// that know their identity and which other records they point at. The graph
// package wraps those records into nodes without copying or reshaping them, so
// the host keeps working with its own type through Node.Data.
//
// # Construction
//
// A graph is built in one call and never re-linked afterwards:
//
//  1. **Nodes:** records are processed in input order. The first record for a
//     key wins; later duplicates are dropped and reported.
//  2. **Links:** in directed mode, one-sided declarations are completed. If B
//     lists A as a child, A gets B as a parent, and the other way around.
//  3. **Cycles:** the graph-level circular flag is computed once. A non-empty
//     directed graph without any root is flagged straight away.
//
// Directed and undirected graphs share one type. The mode only decides which
// contract builds the relations and which cycle walk runs.
//
// # Relations
//
// Every node keeps one map from neighbour key to a Direction bit set. A
// neighbour can be both Parent and Child of the same node (a 2-cycle), so the
// bits are OR-ed together instead of overwritten. Relations only grow.
// References to keys that never became nodes are kept as they were declared
// and show up as dangling-reference diagnostics.
//
// # Limits
//
// Cycle detection and path search use explicit work lists, so deep graphs do
// not grow the goroutine stack. The directed walk skips nodes whose descent
// already finished without a cycle, so on acyclic graphs it visits each node
// and edge once. Nodes that lead into a cycle are walked again for every path
// reaching them, which only costs more on graphs with many cycles. The
// shortest-path search expands each node at most once, whether or not the
// destination is reachable, plus a heap operation per edge.
//
// # Diagnostics
//
// Nothing in this package returns an error from construction. Anomalies are
// logged through the logger found on the context (see internal/ctxlog) and
// kept in Graph.Diagnostics, each wrapping one of the sentinel errors so hosts
// can match them with errors.Is.
//
// # Thread-Safety
//
// A Graph is owned by a single caller and is not safe for concurrent use.
package graph
