package matching

// Unmatched marks a left vertex that received no partner.
const Unmatched = -1

// Problem is a bipartite matching instance. Left vertices are numbered
// 0..LeftCount-1 and right vertices 0..RightCount-1; Edges[left] lists the
// right vertices adjacent to left, in the order the caller wants them tried.
type Problem struct {
	LeftCount  int
	RightCount int
	Edges      [][]int
}

// Assignment maps each left vertex to its matched right vertex, or Unmatched.
type Assignment []int

func (assignment Assignment) Cardinality() int {
	cardinality := 0
	for _, right := range assignment {
		if right != Unmatched {
			cardinality++
		}
	}
	return cardinality
}
