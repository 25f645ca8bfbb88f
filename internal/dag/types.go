package dag

import "sync"

// Graph is a collection of nodes and their ordering constraints.
// All operations on the graph are concurrency-safe.
type Graph struct {
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order is the insertion order of node IDs, used to break ties.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the set of nodes that must come before this node.
	deps map[string]*node
	// dependents holds the set of nodes that must come after this node.
	dependents map[string]*node
}
