package model

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("timeslot", validateTimeSlot)
}

var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeSlotPattern.MatchString(fl.Field().String())
}

// Validate rejects missing ids, duplicate ids and malformed time slots before
// any model construction. Bad rows are reported, never silently dropped.
func Validate(input ScheduleInput) error {
	seenPatients := make(map[string]bool, len(input.Patients))
	for _, patient := range input.Patients {
		if err := validate.Struct(patient); err != nil {
			return &ValidationError{Entity: "patient", ID: patient.ID, Reason: "patient_id is required"}
		}
		if seenPatients[patient.ID] {
			return &ValidationError{Entity: "patient", ID: patient.ID, Reason: "duplicate patient_id"}
		}
		seenPatients[patient.ID] = true
	}

	seenDoctors := make(map[string]bool, len(input.Doctors))
	for _, doctor := range input.Doctors {
		if err := validate.Struct(doctor); err != nil {
			return &ValidationError{Entity: "doctor", ID: doctor.ID, Reason: "doctor_id is required"}
		}
		if seenDoctors[doctor.ID] {
			return &ValidationError{Entity: "doctor", ID: doctor.ID, Reason: "duplicate doctor_id"}
		}
		seenDoctors[doctor.ID] = true

		for _, slot := range doctor.Slots {
			if err := validate.Var(slot, "timeslot"); err != nil {
				return &ValidationError{Entity: "doctor", ID: doctor.ID, Reason: fmt.Sprintf("malformed time slot %q, expected HH:MM", slot)}
			}
		}
	}

	return nil
}
