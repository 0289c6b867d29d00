package matching

// Status reports the solver's outcome. A capacity-1 bipartite instance always
// admits an optimal matching, so anything other than StatusOptimal signals an
// internal error rather than a property of the input.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusError
)

func (status Status) String() string {
	switch status {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	default:
		return "ERROR"
	}
}
