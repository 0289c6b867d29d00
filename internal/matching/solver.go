package matching

import "fmt"

// Solver computes a maximum-cardinality matching of a bipartite problem.
// Implementations must be deterministic: identical problems (same vertex and
// adjacency order) yield identical assignments, with no shared state between
// calls.
type Solver interface {
	Solve(problem Problem) (Assignment, Status, error)
}

func NewAugmentingSolver() Solver {
	return &augmentingSolver{}
}

func NewHopcroftKarpSolver() Solver {
	return &hopcroftKarpSolver{}
}

func validateProblem(problem Problem) error {
	if problem.LeftCount < 0 || problem.RightCount < 0 {
		return fmt.Errorf("vertex counts must be non-negative: %v, %v", problem.LeftCount, problem.RightCount)
	} else if len(problem.Edges) != problem.LeftCount {
		return fmt.Errorf("expected %v adjacency rows, got %v", problem.LeftCount, len(problem.Edges))
	}
	for left, neighbors := range problem.Edges {
		for _, right := range neighbors {
			if right < 0 || right >= problem.RightCount {
				return fmt.Errorf("edge %v~%v is out of range", left, right)
			}
		}
	}
	return nil
}
