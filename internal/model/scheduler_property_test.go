package model_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"patient-scheduler/internal/dataset"
	"patient-scheduler/internal/matching"
	"patient-scheduler/internal/model"
)

// The aggregate invariants must hold for any input: schedule and unscheduled
// partition the patients, utilization accounts for every booked appointment,
// and the optimum is exactly min(patients, slot units).
func TestScheduleInvariants(t *testing.T) {
	configs := []dataset.Config{
		{Patients: 0, Doctors: 3, Seed: 1},
		{Patients: 5, Doctors: 0, Seed: 2},
		{Patients: 10, Doctors: 2, MinSlotsPerDoctor: 1, MaxSlotsPerDoctor: 3, Seed: 3},
		{Patients: 50, Doctors: 5, Seed: 4},
		{Patients: 120, Doctors: 4, MinSlotsPerDoctor: 2, MaxSlotsPerDoctor: 16, Seed: 5},
		{Patients: 7, Doctors: 30, Seed: 6},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("%vx%v", config.Patients, config.Doctors), func(t *testing.T) {
			g := NewWithT(t)

			patients, doctors := dataset.Generate(config)
			input := model.ScheduleInput{Patients: patients, Doctors: doctors}
			scheduler := model.NewScheduler(matching.NewHopcroftKarpSolver())

			result, err := scheduler.Build(input)
			g.Expect(err).NotTo(HaveOccurred())

			units := input.Units()
			g.Expect(result.Schedule).To(HaveLen(min(len(patients), len(units))))
			g.Expect(len(result.Schedule) + len(result.Unscheduled)).To(Equal(len(patients)))

			bookedTotal := 0
			for _, record := range result.Utilization {
				bookedTotal += record.BookedCount
				g.Expect(record.BookedCount).To(BeNumerically("<=", record.TotalSlots))
				if record.TotalSlots == 0 {
					g.Expect(record.Percentage).To(BeZero())
				}
			}
			g.Expect(bookedTotal).To(Equal(len(result.Schedule)))

			g.Expect(scheduler.Verify(result, input)).To(BeTrue())
		})
	}
}
