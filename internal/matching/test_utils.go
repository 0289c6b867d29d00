package matching

import "math/rand/v2"

func GenerateProblem(leftCount, rightCount int, density float32, seed uint64) Problem {
	random := rand.New(rand.NewPCG(seed, seed))

	problem := Problem{
		LeftCount:  leftCount,
		RightCount: rightCount,
		Edges:      make([][]int, leftCount),
	}

	for left := range leftCount {
		problem.Edges[left] = make([]int, 0, rightCount)
		for right := range rightCount {
			if random.Float32() < density {
				problem.Edges[left] = append(problem.Edges[left], right)
			}
		}
	}

	return problem
}

// AssertMatching checks that the assignment only uses edges present in the
// problem and that no right vertex is taken twice.
func AssertMatching(problem Problem, assignment Assignment) bool {
	if len(assignment) != problem.LeftCount {
		return false
	}

	taken := make(map[int]bool)
	for left, right := range assignment {
		if right == Unmatched {
			continue
		}
		if taken[right] {
			return false
		}
		taken[right] = true

		adjacent := false
		for _, neighbor := range problem.Edges[left] {
			if neighbor == right {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return false
		}
	}
	return true
}
