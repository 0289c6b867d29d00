package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"patient-scheduler/internal/model"
)

var (
	patientHeader = []string{"patient_id", "patient_name"}
	doctorHeader  = []string{"doctor_id", "doctor_name", "available_slots"}
)

func WritePatientsCSV(path string, patients []model.Patient) error {
	records := [][]string{patientHeader}
	for _, patient := range patients {
		records = append(records, []string{patient.ID, patient.Name})
	}
	return writeRecords(path, records)
}

// WriteDoctorsCSV serializes each doctor's slots as a single semicolon-joined
// column.
func WriteDoctorsCSV(path string, doctors []model.Doctor) error {
	records := [][]string{doctorHeader}
	for _, doctor := range doctors {
		records = append(records, []string{doctor.ID, doctor.Name, strings.Join(doctor.Slots, ";")})
	}
	return writeRecords(path, records)
}

func ReadPatientsCSV(path string) ([]model.Patient, error) {
	records, err := readRecords(path, patientHeader)
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(record []string, _ int) model.Patient {
		return model.Patient{ID: record[0], Name: record[1]}
	}), nil
}

// ReadDoctorsCSV parses the doctors file. An empty available_slots cell means
// the doctor has no capacity, not a malformed row.
func ReadDoctorsCSV(path string) ([]model.Doctor, error) {
	records, err := readRecords(path, doctorHeader)
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(record []string, _ int) model.Doctor {
		doctor := model.Doctor{ID: record[0], Name: record[1]}
		if cell := strings.TrimSpace(record[2]); cell != "" {
			doctor.Slots = strings.Split(cell, ";")
		}
		return doctor
	}), nil
}

func writeRecords(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

func readRecords(path string, header []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || !slices.Equal(records[0], header) {
		return nil, fmt.Errorf("%v: expected header %v", path, strings.Join(header, ","))
	}

	return records[1:], nil
}
