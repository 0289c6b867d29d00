package model

import "patient-scheduler/internal/matching"

type Scheduler interface {
	// Build validates the input, constructs the complete bipartite assignment
	// between patients and slot units, solves it to optimality and projects
	// the result. Patients are taken in ascending id order and slot units in
	// (doctor id, slot position) order, so among equally sized optima the
	// lexicographically smaller patient ids are the ones scheduled.
	Build(input ScheduleInput) (*Result, error)

	// Verify independently re-checks the result's invariants: no patient or
	// slot unit is used twice, the three views agree on counts, and the
	// schedule's cardinality is min(patients, units).
	Verify(result *Result, input ScheduleInput) bool
}

func NewScheduler(solver matching.Solver) Scheduler {
	return newMatchingScheduler(solver)
}
