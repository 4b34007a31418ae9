package netsimplex

// findJoin returns the lowest common ancestor of k and l in the current
// tree (§4.4): climb the deeper node up by parent until depths match, then
// climb both in lockstep until they meet.
func (s *Solver) findJoin(k, l int) int {
	u, v := k, l
	for s.depth[u] > s.depth[v] {
		u = s.parent[u]
	}
	for s.depth[v] > s.depth[u] {
		v = s.parent[v]
	}
	for u != v {
		u = s.parent[u]
		v = s.parent[v]
	}
	return u
}
