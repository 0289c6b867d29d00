package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"patient-scheduler/internal/dataset"
	"patient-scheduler/internal/matching"
	"patient-scheduler/internal/model"
)

type instanceSize struct {
	patients int
	doctors  int
}

var (
	sizes = []instanceSize{
		{patients: 10, doctors: 2},
		{patients: 50, doctors: 5},
		{patients: 200, doctors: 20},
		{patients: 1000, doctors: 80},
		{patients: 5000, doctors: 400},
	}
	solvers = map[string]func() matching.Solver{
		"hopcroftkarp": matching.NewHopcroftKarpSolver,
		"augmenting":   matching.NewAugmentingSolver,
	}
)

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"solver", "patients", "doctors", "slot_units", "scheduled", "milliseconds"}); err != nil {
		log.Fatal(err)
	}

	for _, size := range sizes {
		patients, doctors := dataset.Generate(dataset.Config{
			Patients: size.patients,
			Doctors:  size.doctors,
			Seed:     uint64(size.patients),
		})
		input := model.ScheduleInput{Patients: patients, Doctors: doctors}

		for _, solverName := range []string{"hopcroftkarp", "augmenting"} {
			scheduler := model.NewScheduler(solvers[solverName]())

			start := time.Now()
			result, err := scheduler.Build(input)
			elapsed := time.Since(start)

			if err != nil {
				log.Fatalf("%v failed on %v patients: %v", solverName, size.patients, err)
			} else if !scheduler.Verify(result, input) {
				log.Fatalf("%v produced an invalid schedule on %v patients", solverName, size.patients)
			}

			record := []string{
				solverName,
				fmt.Sprint(size.patients),
				fmt.Sprint(size.doctors),
				fmt.Sprint(len(input.Units())),
				fmt.Sprint(len(result.Schedule)),
				fmt.Sprint(elapsed.Milliseconds()),
			}
			if err := writer.Write(record); err != nil {
				log.Fatal(err)
			}
		}
	}
}
