package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	input := ScheduleInput{
		Patients: []Patient{
			{ID: "P1", Name: "Alice Munro"},
			{ID: "P2", Name: "Bob Vance"},
		},
		Doctors: []Doctor{
			{ID: "D1", Name: "Dr. House", Slots: []string{"09:00", "16:30", "23:59"}},
			{ID: "D2", Name: "Dr. Wilson"}, // no slots is valid
		},
	}

	assert.NoError(t, Validate(input))
}

func TestValidateTimeSlotShapes(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "16:30", "23:59"}
	invalid := []string{"", "9:00", "09:0", "24:00", "12:60", "09-00", "0900", "noon", "09:00 "}

	for _, slot := range valid {
		input := ScheduleInput{Doctors: []Doctor{{ID: "D1", Slots: []string{slot}}}}
		assert.NoError(t, Validate(input), "slot %q should be accepted", slot)
	}
	for _, slot := range invalid {
		input := ScheduleInput{Doctors: []Doctor{{ID: "D1", Slots: []string{slot}}}}

		err := Validate(input)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "slot %q should be rejected", slot)
		assert.Equal(t, "doctor", validationErr.Entity)
	}
}

func TestValidateDuplicateIds(t *testing.T) {
	duplicatePatients := ScheduleInput{
		Patients: []Patient{{ID: "P1"}, {ID: "P2"}, {ID: "P1"}},
	}
	err := Validate(duplicatePatients)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "patient", validationErr.Entity)
	assert.Equal(t, "P1", validationErr.ID)

	duplicateDoctors := ScheduleInput{
		Doctors: []Doctor{{ID: "D1"}, {ID: "D1"}},
	}
	err = Validate(duplicateDoctors)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "doctor", validationErr.Entity)
	assert.Equal(t, "D1", validationErr.ID)
}

func TestValidateMissingIds(t *testing.T) {
	missingPatient := ScheduleInput{Patients: []Patient{{Name: "Alice Munro"}}}
	var validationErr *ValidationError
	require.ErrorAs(t, Validate(missingPatient), &validationErr)
	assert.Equal(t, "patient", validationErr.Entity)

	missingDoctor := ScheduleInput{Doctors: []Doctor{{Name: "Dr. House"}}}
	require.ErrorAs(t, Validate(missingDoctor), &validationErr)
	assert.Equal(t, "doctor", validationErr.Entity)
}
