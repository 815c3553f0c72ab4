// Package core provides the thread-safe in-memory Graph that every other
// package in this module reads from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Vertex and edge metadata (SetVertexMetadata, WithEdgeMetadata), used for
//     topic labels on vertices and named weights on edges
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//	RemoveVertex(id string) error              // O(E)
//	RemoveVertices(ids []string)               // O(E + len(ids))
//	SetVertexMetadata(id, key string, v any) error
//	VertexMetadata(id, key string) (any, bool, error)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1)†
//	RemoveEdge(edgeID string) error            // O(1)
//	HasEdge(from, to string) bool              // O(1)
//	GetEdge(edgeID string) (*Edge, error)      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)      // outgoing + undirected incident edges
//	NeighborIDs(id string) ([]string, error)   // successors, unique, sorted
//	InNeighborIDs(id string) ([]string, error) // predecessors, unique, sorted
//	Vertices() []string                        // sorted
//	Edges() []*Edge                            // creation order
//	Degree(id string) (in, out, undirected int, err error)
//
//	// Cloning and views
//	CloneEmpty() *Graph; Clone() *Graph; InducedSubgraph(g, keep) *Graph
//
// † amortized: atomic ID generation + nested-map insertion.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
