package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"patient-scheduler/internal/dataset"
	"patient-scheduler/internal/logger"
	"patient-scheduler/internal/matching"
	"patient-scheduler/internal/model"
)

var solvers = map[string]func() matching.Solver{
	"hopcroftkarp": matching.NewHopcroftKarpSolver,
	"augmenting":   matching.NewAugmentingSolver,
}

func main() {
	// Define arguments
	patientsPtr := flag.String("patients", "", "Path to the patients CSV file (patient_id,patient_name)")
	doctorsPtr := flag.String("doctors", "", "Path to the doctors CSV file (doctor_id,doctor_name,available_slots)")
	inputPtr := flag.String("input", "", "Path to a JSON scenario file holding both patients and doctors; overrides -patients/-doctors")
	solverPtr := flag.String("solver", "hopcroftkarp", "Matching solver to use. Allowed values are: \"hopcroftkarp\", \"augmenting\", where \"hopcroftkarp\" is the default")
	outPtr := flag.String("out", "", "Path to the file where the result JSON will be written; if empty, only the tables are printed")
	logLevelPtr := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)

	log, err := logger.New(*logLevelPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With(zap.String("run_id", uuid.NewString()))

	// Validate arguments
	if _, ok := solvers[solverStr]; !ok {
		log.Fatal("not a valid solver", zap.String("solver", solverStr))
	}
	if *inputPtr == "" && (*patientsPtr == "" || *doctorsPtr == "") {
		log.Fatal("either -input or both -patients and -doctors must be specified")
	}

	// Extract input
	input, err := loadInput(*inputPtr, *patientsPtr, *doctorsPtr)
	if err != nil {
		log.Fatal("cannot load input", zap.Error(err))
	}
	log.Info("input loaded",
		zap.Int("patients", len(input.Patients)),
		zap.Int("doctors", len(input.Doctors)),
		zap.Int("slot_units", len(input.Units())),
	)
	if len(input.Patients) == 0 || len(input.Units()) == 0 {
		log.Warn("nothing to schedule: the schedule will be empty")
	}

	// Initialize engines
	solver := solvers[solverStr]()
	scheduler := model.NewScheduler(solver)

	// Build the schedule
	start := time.Now()
	result, err := scheduler.Build(input)

	var validationErr *model.ValidationError
	var solverErr *model.SolverError
	if errors.As(err, &validationErr) {
		log.Fatal("input rejected",
			zap.String("entity", validationErr.Entity),
			zap.String("id", validationErr.ID),
			zap.String("reason", validationErr.Reason),
		)
	} else if errors.As(err, &solverErr) {
		log.Fatal("solver failed",
			zap.String("status", solverErr.Status.String()),
			zap.Int("patients", solverErr.Patients),
			zap.Int("slot_units", solverErr.Units),
			zap.Error(err),
		)
	} else if err != nil {
		log.Fatal("an error occurred during schedule construction", zap.Error(err))
	}

	// Verify schedule correctness
	if !scheduler.Verify(result, input) {
		log.Error("schedule verification failed")
		os.Exit(15)
	}
	log.Info("schedule built",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("scheduled", len(result.Schedule)),
		zap.Int("unscheduled", len(result.Unscheduled)),
	)

	renderSchedule(result.Schedule)
	renderUnscheduled(result.Unscheduled)
	renderUtilization(result.Utilization)

	if *outPtr != "" {
		resultJson, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal("an error occurred while building output json", zap.Error(err))
		}
		if err := os.WriteFile(*outPtr, resultJson, 0666); err != nil {
			log.Fatal("an error occurred while writing to the output file", zap.Error(err))
		}
	}
}

func loadInput(inputPath, patientsPath, doctorsPath string) (model.ScheduleInput, error) {
	if inputPath != "" {
		return model.InputFromJson(inputPath)
	}

	patients, err := dataset.ReadPatientsCSV(patientsPath)
	if err != nil {
		return model.ScheduleInput{}, err
	}
	doctors, err := dataset.ReadDoctorsCSV(doctorsPath)
	if err != nil {
		return model.ScheduleInput{}, err
	}

	return model.ScheduleInput{Patients: patients, Doctors: doctors}, nil
}

// renderSchedule prints the appointments ordered by slot then doctor name,
// which reads naturally as a day plan.
func renderSchedule(schedule []model.ScheduleRow) {
	fmt.Println("Optimized Schedule")
	if len(schedule) == 0 {
		fmt.Println("no appointments could be scheduled")
		return
	}

	display := slices.Clone(schedule)
	slices.SortFunc(display, func(a, b model.ScheduleRow) int {
		if comparison := strings.Compare(a.Slot, b.Slot); comparison != 0 {
			return comparison
		}
		return strings.Compare(a.DoctorName, b.DoctorName)
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Patient ID", "Patient Name", "Doctor ID", "Doctor Name", "Time Slot"})
	for _, row := range display {
		table.Append([]string{row.PatientID, row.PatientName, row.DoctorID, row.DoctorName, row.Slot})
	}
	table.Render()
}

func renderUnscheduled(unscheduled []model.Patient) {
	fmt.Println("Unscheduled Patients")
	if len(unscheduled) == 0 {
		fmt.Println("all patients were scheduled")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Patient ID", "Patient Name"})
	for _, patient := range unscheduled {
		table.Append([]string{patient.ID, patient.Name})
	}
	table.Render()
}

func renderUtilization(utilization []model.UtilizationRecord) {
	fmt.Println("Doctor Utilization")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Doctor ID", "Doctor Name", "Booked", "Total Slots", "Utilization"})
	for _, record := range utilization {
		table.Append([]string{
			record.DoctorID,
			record.DoctorName,
			fmt.Sprintf("%d", record.BookedCount),
			fmt.Sprintf("%d", record.TotalSlots),
			fmt.Sprintf("%.1f%%", record.Percentage),
		})
	}
	table.Render()

	booked := lo.SumBy(utilization, func(record model.UtilizationRecord) int { return record.BookedCount })
	total := lo.SumBy(utilization, func(record model.UtilizationRecord) int { return record.TotalSlots })
	if total > 0 {
		fmt.Printf("combined utilization: %v/%v (%.1f%%)\n", booked, total, float64(booked)/float64(total)*100)
	}
}
