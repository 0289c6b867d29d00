package model

import "github.com/samber/lo"

type unitKey struct {
	DoctorID string
	Slot     string
}

func verify(result *Result, input ScheduleInput) bool {
	if result == nil {
		return false
	}

	//** Capacity per (doctor, slot) value; duplicate values add capacity
	capacity := make(map[unitKey]int)
	for _, doctor := range input.Doctors {
		for _, slot := range doctor.Slots {
			capacity[unitKey{DoctorID: doctor.ID, Slot: slot}]++
		}
	}

	knownPatients := lo.SliceToMap(input.Patients, func(patient Patient) (string, bool) {
		return patient.ID, true
	})

	// Check that:
	// - Every scheduled patient exists and appears in exactly one row
	// - No (doctor, slot) unit is booked beyond its capacity
	seenPatients := make(map[string]bool, len(result.Schedule))
	used := make(map[unitKey]int)
	for _, row := range result.Schedule {
		if !knownPatients[row.PatientID] || seenPatients[row.PatientID] {
			return false
		}
		seenPatients[row.PatientID] = true

		key := unitKey{DoctorID: row.DoctorID, Slot: row.Slot}
		if used[key]++; used[key] > capacity[key] {
			return false
		}
	}

	// Scheduled and unscheduled must partition the patients
	if lo.SomeBy(result.Unscheduled, func(patient Patient) bool {
		return seenPatients[patient.ID] || !knownPatients[patient.ID]
	}) {
		return false
	}
	if len(result.Schedule)+len(result.Unscheduled) != len(input.Patients) {
		return false
	}

	// Utilization must account for every booked appointment
	bookedTotal := lo.SumBy(result.Utilization, func(record UtilizationRecord) int {
		return record.BookedCount
	})
	if bookedTotal != len(result.Schedule) {
		return false
	}

	// Every patient is compatible with every unit, so the optimum is exactly
	// min(patients, units)
	return len(result.Schedule) == min(len(input.Patients), len(input.Units()))
}
