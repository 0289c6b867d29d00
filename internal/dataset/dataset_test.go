package dataset

import (
	"path"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-scheduler/internal/model"
)

func TestStandardTimeSlots(t *testing.T) {
	slots := StandardTimeSlots()

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
	assert.True(t, slices.IsSorted(slots))
}

func TestGenerate(t *testing.T) {
	patients, doctors := Generate(Config{
		Patients:          50,
		Doctors:           5,
		MinSlotsPerDoctor: 8,
		MaxSlotsPerDoctor: 12,
		Seed:              1,
	})

	require.Len(t, patients, 50)
	require.Len(t, doctors, 5)

	patientId := regexp.MustCompile(`^P\d{3}$`)
	for _, patient := range patients {
		assert.Regexp(t, patientId, patient.ID)
		assert.NotEmpty(t, patient.Name)
	}

	doctorId := regexp.MustCompile(`^D\d{2}$`)
	grid := StandardTimeSlots()
	for _, doctor := range doctors {
		assert.Regexp(t, doctorId, doctor.ID)
		assert.Contains(t, doctor.Name, "Dr. ")
		assert.GreaterOrEqual(t, len(doctor.Slots), 8)
		assert.LessOrEqual(t, len(doctor.Slots), 12)
		assert.True(t, slices.IsSorted(doctor.Slots))
		for _, slot := range doctor.Slots {
			assert.Contains(t, grid, slot)
		}
	}

	// Generated data must pass the engine's validation as-is
	assert.NoError(t, model.Validate(model.ScheduleInput{Patients: patients, Doctors: doctors}))
}

func TestGenerateDeterministic(t *testing.T) {
	config := Config{Patients: 20, Doctors: 4, Seed: 7}

	firstPatients, firstDoctors := Generate(config)
	secondPatients, secondDoctors := Generate(config)

	assert.Equal(t, firstPatients, secondPatients)
	assert.Equal(t, firstDoctors, secondDoctors)
}

func TestCSVRoundTrip(t *testing.T) {
	patients, doctors := Generate(Config{Patients: 10, Doctors: 3, Seed: 3})
	directory := t.TempDir()
	patientsPath := path.Join(directory, "patients.csv")
	doctorsPath := path.Join(directory, "doctors.csv")

	require.NoError(t, WritePatientsCSV(patientsPath, patients))
	require.NoError(t, WriteDoctorsCSV(doctorsPath, doctors))

	loadedPatients, err := ReadPatientsCSV(patientsPath)
	require.NoError(t, err)
	loadedDoctors, err := ReadDoctorsCSV(doctorsPath)
	require.NoError(t, err)

	assert.Equal(t, patients, loadedPatients)
	assert.Equal(t, doctors, loadedDoctors)
}

func TestReadDoctorsCSVEmptySlotsCell(t *testing.T) {
	doctorsPath := path.Join(t.TempDir(), "doctors.csv")
	require.NoError(t, WriteDoctorsCSV(doctorsPath, []model.Doctor{
		{ID: "D01", Name: "Dr. House"},
	}))

	doctors, err := ReadDoctorsCSV(doctorsPath)

	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Empty(t, doctors[0].Slots)
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	patientsPath := path.Join(t.TempDir(), "patients.csv")
	require.NoError(t, WriteDoctorsCSV(patientsPath, nil)) // doctors header in a patients file

	_, err := ReadPatientsCSV(patientsPath)

	assert.Error(t, err)
}
