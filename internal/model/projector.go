package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"patient-scheduler/internal/matching"
)

type ScheduleRow struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Slot        string `json:"time_slot"`
}

type UtilizationRecord struct {
	DoctorID    string  `json:"doctor_id"`
	DoctorName  string  `json:"doctor_name"`
	BookedCount int     `json:"booked_count"`
	TotalSlots  int     `json:"total_slots"`
	Percentage  float64 `json:"percentage"`
}

// Result holds the three read-only views derived from a solved assignment.
// Schedule is sorted by patient id, Unscheduled by patient id, Utilization in
// the doctors' input order.
type Result struct {
	Schedule    []ScheduleRow       `json:"schedule"`
	Unscheduled []Patient           `json:"unscheduled_patients"`
	Utilization []UtilizationRecord `json:"utilization"`
	Status      matching.Status     `json:"-"`
}

func project(selected []uint64, indexer Indexer, patients []Patient, units []SlotUnit, input ScheduleInput, status matching.Status) *Result {
	doctorNames := lo.SliceToMap(input.Doctors, func(doctor Doctor) (string, string) {
		return doctor.ID, doctor.Name
	})

	//** Schedule rows
	schedule := make([]ScheduleRow, 0, len(selected))
	booked := make(map[string]int, len(input.Doctors))
	scheduled := make(map[string]bool, len(selected))
	for _, variable := range selected {
		patientIndex, unitIndex := indexer.Attributes(variable)
		patient, unit := patients[patientIndex], units[unitIndex]

		schedule = append(schedule, ScheduleRow{
			PatientID:   patient.ID,
			PatientName: patient.Name,
			DoctorID:    unit.DoctorID,
			DoctorName:  doctorNames[unit.DoctorID],
			Slot:        unit.Slot,
		})
		booked[unit.DoctorID]++
		scheduled[patient.ID] = true
	}
	slices.SortFunc(schedule, func(a, b ScheduleRow) int {
		return strings.Compare(a.PatientID, b.PatientID)
	})

	//** Unscheduled patients (patients is already sorted by id)
	unscheduled := lo.Filter(patients, func(patient Patient, _ int) bool {
		return !scheduled[patient.ID]
	})

	//** Per-doctor utilization; doctors without slots are reported at 0%
	utilization := lo.Map(input.Doctors, func(doctor Doctor, _ int) UtilizationRecord {
		record := UtilizationRecord{
			DoctorID:    doctor.ID,
			DoctorName:  doctor.Name,
			BookedCount: booked[doctor.ID],
			TotalSlots:  len(doctor.Slots),
		}
		if record.TotalSlots > 0 {
			record.Percentage = float64(record.BookedCount) / float64(record.TotalSlots) * 100
		}
		return record
	})

	return &Result{
		Schedule:    schedule,
		Unscheduled: unscheduled,
		Utilization: utilization,
		Status:      status,
	}
}
