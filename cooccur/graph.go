// SPDX-License-Identifier: MIT

package cooccur

import (
	"sort"

	"github.com/biascal/biascal/core"
)

// Graph is an undirected weighted co-occurrence graph over taxa. Nodes are
// the taxa present in at least one sample; an edge (u,v) exists iff some
// sample contains both u and v, with weight = the count of such samples.
// Self-loops are never stored.
//
// The graph is immutable after BuildGraph; accessors enumerate nodes and
// edges in lexicographic order for reproducible output.
type Graph struct {
	nodes []string       // lexicographically sorted taxa with ≥1 observation
	index map[string]int // taxon → position in nodes
	wts   map[[2]int]int // canonical (i<j) node-index pair → sample count
}

// Edge is one undirected co-occurrence edge; U < V lexicographically.
type Edge struct {
	U, V   string
	Weight int
}

// BuildGraph constructs the co-occurrence graph of p.
//
// Algorithm:
//  1. Collect the set of taxa present in at least one sample and sort it
//     lexicographically; these are the nodes (isolated single-taxon samples
//     still register their taxon as a node).
//  2. For every sample row, for every unordered pair {u,v} of present taxa,
//     increment the (u,v) edge weight, creating the edge at weight 1.
//
// Complexity: O(samples × taxa²) worst case, O(nodes log nodes) for sorting.
func BuildGraph(p *core.PresenceMatrix) *Graph {
	taxa := p.Taxa()

	// Pass 1: presence per column, to know which taxa become nodes.
	observed := make([]bool, len(taxa))
	rows := make([][]int, p.NumSamples())
	for i := 0; i < p.NumSamples(); i++ {
		row, _ := p.RowTaxa(i) // row index is in range by construction
		rows[i] = row
		for _, j := range row {
			observed[j] = true
		}
	}

	g := &Graph{wts: make(map[[2]int]int)}
	for j, seen := range observed {
		if seen {
			g.nodes = append(g.nodes, taxa[j])
		}
	}
	sort.Strings(g.nodes)
	g.index = make(map[string]int, len(g.nodes))
	for i, t := range g.nodes {
		g.index[t] = i
	}

	// Pass 2: accumulate pair weights per sample row.
	for _, row := range rows {
		for a := 0; a < len(row); a++ {
			u := g.index[taxa[row[a]]]
			for b := a + 1; b < len(row); b++ {
				v := g.index[taxa[row[b]]]
				g.wts[canonicalPair(u, v)]++
			}
		}
	}

	return g
}

// canonicalPair orders a node-index pair so (u,v) and (v,u) share a key.
func canonicalPair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// NumNodes returns the number of observed taxa.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Nodes returns a copy of the node labels in lexicographic order.
func (g *Graph) Nodes() []string { return append([]string(nil), g.nodes...) }

// Weight returns the number of samples in which u and v co-occur, or 0 when
// no such sample exists (including unknown taxa and u == v).
//
// Complexity: O(1).
func (g *Graph) Weight(u, v string) int {
	iu, okU := g.index[u]
	iv, okV := g.index[v]
	if !okU || !okV || iu == iv {
		return 0
	}

	return g.wts[canonicalPair(iu, iv)]
}

// HasEdge reports whether u and v co-occur in at least one sample.
func (g *Graph) HasEdge(u, v string) bool { return g.Weight(u, v) > 0 }

// Edges returns all edges sorted by (U, V) lexicographically. The listing is
// intended for diagnostic reporting and external visualization.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.wts))
	for pair, w := range g.wts {
		out = append(out, Edge{U: g.nodes[pair[0]], V: g.nodes[pair[1]], Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
