// SPDX-License-Identifier: MIT

package cooccur

import "sort"

// ComponentAssignment maps each observed taxon to the id of its connected
// component. Ids are small integers starting at 0, assigned in lexicographic
// order of each component's first taxon, so the numbering is deterministic
// across runs. Taxa absent from every sample are not in the graph and have
// no assignment.
type ComponentAssignment struct {
	ids   map[string]int // taxon → component id
	count int
}

// Components labels the connected components of g.
//
// Algorithm: disjoint-set union (union-find) with path compression and union
// by rank over the integer node indices. Since g.nodes is lexicographically
// sorted, scanning nodes in index order and numbering each unseen root as it
// is first encountered yields the canonical id ordering. Edge weights play
// no role: only edge existence connects.
//
// Complexity: O((V + E) α(V)) time, O(V) memory.
func (g *Graph) Components() ComponentAssignment {
	n := len(g.nodes)

	// parent[i] is the DSU parent of node i; initially every node is its own root.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank.
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for pair := range g.wts {
		union(pair[0], pair[1])
	}

	// Number roots in lexicographic node order.
	ca := ComponentAssignment{ids: make(map[string]int, n)}
	rootID := make(map[int]int, n)
	for i, taxon := range g.nodes {
		r := find(i)
		id, seen := rootID[r]
		if !seen {
			id = ca.count
			rootID[r] = id
			ca.count++
		}
		ca.ids[taxon] = id
	}

	return ca
}

// Count returns the number of components.
func (ca ComponentAssignment) Count() int { return ca.count }

// ComponentOf returns the component id of taxon and whether the taxon is
// assigned at all (taxa observed in no sample are not).
func (ca ComponentAssignment) ComponentOf(taxon string) (int, bool) {
	id, ok := ca.ids[taxon]

	return id, ok
}

// Members returns the taxa of component id, lexicographically sorted.
// Unknown ids yield an empty slice.
func (ca ComponentAssignment) Members(id int) []string {
	var out []string
	for taxon, cid := range ca.ids {
		if cid == id {
			out = append(out, taxon)
		}
	}
	sort.Strings(out)

	return out
}

// Partition returns all components as sorted member lists, indexed by
// component id. It is the diagnostic payload attached to identifiability
// failures.
func (ca ComponentAssignment) Partition() [][]string {
	out := make([][]string, ca.count)
	for id := range out {
		out[id] = ca.Members(id)
	}

	return out
}
