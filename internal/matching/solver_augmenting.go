package matching

// augmentingSolver is the classic augmenting-path matcher (Kuhn's algorithm).
// Left vertices are processed in ascending order and an earlier vertex is only
// rematched when an augmenting path exists, so lower-indexed vertices keep
// their partners under contention. O(V*E) worst case.
type augmentingSolver struct{}

func (solver *augmentingSolver) Solve(problem Problem) (Assignment, Status, error) {
	if err := validateProblem(problem); err != nil {
		return nil, StatusError, err
	}

	matchLeft := make(Assignment, problem.LeftCount)
	matchRight := make([]int, problem.RightCount)
	for i := range matchLeft {
		matchLeft[i] = Unmatched
	}
	for i := range matchRight {
		matchRight[i] = Unmatched
	}

	for left := range problem.LeftCount {
		visited := make([]bool, problem.RightCount)
		augment(problem, left, visited, matchLeft, matchRight)
	}

	return matchLeft, StatusOptimal, nil
}

func augment(problem Problem, left int, visited []bool, matchLeft Assignment, matchRight []int) bool {
	for _, right := range problem.Edges[left] {
		if visited[right] {
			continue
		}
		visited[right] = true

		if matchRight[right] == Unmatched || augment(problem, matchRight[right], visited, matchLeft, matchRight) {
			matchLeft[left] = right
			matchRight[right] = left
			return true
		}
	}
	return false
}
