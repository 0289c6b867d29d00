package main

import (
	"flag"
	"log"
	"path"

	"patient-scheduler/internal/dataset"
)

func main() {
	patientsPtr := flag.Int("patients", 50, "Number of patients to generate")
	doctorsPtr := flag.Int("doctors", 5, "Number of doctors to generate")
	minSlotsPtr := flag.Int("min-slots", 8, "Minimum number of slots a doctor is available for")
	maxSlotsPtr := flag.Int("max-slots", 12, "Maximum number of slots a doctor is available for")
	seedPtr := flag.Uint64("seed", 1, "Random seed; the same seed reproduces the same dataset")
	outPtr := flag.String("out", ".", "Directory where patients.csv and doctors.csv will be written")
	flag.Parse()

	if *patientsPtr < 0 || *doctorsPtr < 0 {
		log.Fatal("patient and doctor counts must be non-negative")
	}

	patients, doctors := dataset.Generate(dataset.Config{
		Patients:          *patientsPtr,
		Doctors:           *doctorsPtr,
		MinSlotsPerDoctor: *minSlotsPtr,
		MaxSlotsPerDoctor: *maxSlotsPtr,
		Seed:              *seedPtr,
	})

	patientsPath := path.Join(*outPtr, "patients.csv")
	if err := dataset.WritePatientsCSV(patientsPath, patients); err != nil {
		log.Fatalf("cannot write %v: %v", patientsPath, err)
	}
	log.Printf("generated %v with %v patients", patientsPath, len(patients))

	doctorsPath := path.Join(*outPtr, "doctors.csv")
	if err := dataset.WriteDoctorsCSV(doctorsPath, doctors); err != nil {
		log.Fatalf("cannot write %v: %v", doctorsPath, err)
	}
	log.Printf("generated %v with %v doctors", doctorsPath, len(doctors))
}
