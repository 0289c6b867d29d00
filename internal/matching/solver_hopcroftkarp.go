package matching

// hopcroftKarpSolver finds a maximum matching in O(E*sqrt(V)) by repeatedly
// augmenting along a maximal set of shortest vertex-disjoint paths. Phases
// scan free left vertices in ascending order, which keeps the result stable
// across runs.
type hopcroftKarpSolver struct{}

const infinity = int(^uint(0) >> 1)

func (solver *hopcroftKarpSolver) Solve(problem Problem) (Assignment, Status, error) {
	if err := validateProblem(problem); err != nil {
		return nil, StatusError, err
	}

	state := &hopcroftKarpState{
		problem:    problem,
		matchLeft:  make(Assignment, problem.LeftCount),
		matchRight: make([]int, problem.RightCount),
		distance:   make([]int, problem.LeftCount),
	}
	for i := range state.matchLeft {
		state.matchLeft[i] = Unmatched
	}
	for i := range state.matchRight {
		state.matchRight[i] = Unmatched
	}

	for state.bfs() {
		for left := range problem.LeftCount {
			if state.matchLeft[left] == Unmatched {
				state.dfs(left)
			}
		}
	}

	return state.matchLeft, StatusOptimal, nil
}

type hopcroftKarpState struct {
	problem    Problem
	matchLeft  Assignment
	matchRight []int
	distance   []int
}

// bfs layers the free left vertices and reports whether at least one
// augmenting path remains.
func (state *hopcroftKarpState) bfs() bool {
	queue := make([]int, 0, state.problem.LeftCount)
	for left := range state.problem.LeftCount {
		if state.matchLeft[left] == Unmatched {
			state.distance[left] = 0
			queue = append(queue, left)
		} else {
			state.distance[left] = infinity
		}
	}

	found := false
	for len(queue) > 0 {
		left := queue[0]
		queue = queue[1:]

		for _, right := range state.problem.Edges[left] {
			next := state.matchRight[right]
			if next == Unmatched {
				found = true
			} else if state.distance[next] == infinity {
				state.distance[next] = state.distance[left] + 1
				queue = append(queue, next)
			}
		}
	}
	return found
}

func (state *hopcroftKarpState) dfs(left int) bool {
	for _, right := range state.problem.Edges[left] {
		next := state.matchRight[right]
		if next == Unmatched || (state.distance[next] == state.distance[left]+1 && state.dfs(next)) {
			state.matchLeft[left] = right
			state.matchRight[right] = left
			return true
		}
	}
	state.distance[left] = infinity
	return false
}
