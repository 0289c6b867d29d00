package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"patient-scheduler/internal/matching"
)

type matchingScheduler struct {
	//** Dependencies
	solver  matching.Solver
	indexer Indexer
}

// newMatchingScheduler builds the assignment as a maximum bipartite matching
// instead of the binary linear program the problem is usually stated as: the
// constraint matrix is a bipartite incidence structure (totally unimodular),
// so the matching optimum and the LP optimum coincide.
func newMatchingScheduler(solver matching.Solver) *matchingScheduler {
	return &matchingScheduler{
		solver: solver,
	}
}

func (scheduler *matchingScheduler) Build(input ScheduleInput) (*Result, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}

	//** Fix the variable ordering; it pins the tie-break among equal optima
	patients := sortedPatients(input)
	units := sortedUnits(input)

	scheduler.indexer = NewIndexer(uint64(len(patients)), uint64(len(units)))

	//** Build the matching instance: every patient is compatible with every unit
	neighbors := lo.Range(len(units))
	problem := matching.Problem{
		LeftCount:  len(patients),
		RightCount: len(units),
		Edges:      make([][]int, len(patients)),
	}
	for patient := range problem.Edges {
		problem.Edges[patient] = neighbors
	}

	//** Solve; an empty side simply yields an empty assignment
	assignment, status, err := scheduler.solver.Solve(problem)
	if err != nil || status != matching.StatusOptimal {
		return nil, &SolverError{Status: status, Patients: len(patients), Units: len(units), Err: err}
	}

	//** Decode positive variables through the indexer
	selected := make([]uint64, 0, assignment.Cardinality())
	for patient, unit := range assignment {
		if unit == matching.Unmatched {
			continue
		}
		selected = append(selected, scheduler.indexer.Index(uint64(patient), uint64(unit)))
	}

	return project(selected, scheduler.indexer, patients, units, input, status), nil
}

func (scheduler *matchingScheduler) Verify(result *Result, input ScheduleInput) bool {
	return verify(result, input)
}

func sortedPatients(input ScheduleInput) []Patient {
	patients := slices.Clone(input.Patients)
	slices.SortFunc(patients, func(a, b Patient) int {
		return strings.Compare(a.ID, b.ID)
	})
	return patients
}

// sortedUnits orders capacity units by doctor id, keeping each doctor's
// declared slot order.
func sortedUnits(input ScheduleInput) []SlotUnit {
	units := input.Units()
	slices.SortStableFunc(units, func(a, b SlotUnit) int {
		return strings.Compare(a.DoctorID, b.DoctorID)
	})
	return units
}
