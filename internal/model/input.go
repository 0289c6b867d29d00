package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type Patient struct {
	ID   string `json:"patient_id" mapstructure:"patient_id" validate:"required"`
	Name string `json:"patient_name" mapstructure:"patient_name"`
}

// Doctor carries its bookable slots in declared order. Duplicate slot values
// are kept: each occurrence is an independent capacity unit.
type Doctor struct {
	ID    string   `json:"doctor_id" mapstructure:"doctor_id" validate:"required"`
	Name  string   `json:"doctor_name" mapstructure:"doctor_name"`
	Slots []string `json:"available_slots" mapstructure:"available_slots"`
}

type ScheduleInput struct {
	Patients []Patient `mapstructure:"patients"`
	Doctors  []Doctor  `mapstructure:"doctors"`
}

// SlotUnit is one bookable time slot belonging to one doctor, the unit of
// capacity in the assignment. Position disambiguates duplicate slot values.
type SlotUnit struct {
	DoctorID string
	Slot     string
	Position int
}

// Units flattens the doctors' slot lists into capacity units, preserving each
// doctor's slot order.
func (input ScheduleInput) Units() []SlotUnit {
	units := make([]SlotUnit, 0)
	for _, doctor := range input.Doctors {
		for position, slot := range doctor.Slots {
			units = append(units, SlotUnit{DoctorID: doctor.ID, Slot: slot, Position: position})
		}
	}
	return units
}

func InputFromJson(file string) (ScheduleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ScheduleInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ScheduleInput{}, err
	}

	var input ScheduleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ScheduleInput{}, fmt.Errorf("cannot decode input: %v", err)
	}

	return input, nil
}
