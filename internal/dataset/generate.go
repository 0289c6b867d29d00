package dataset

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/brianvoe/gofakeit/v7"

	"patient-scheduler/internal/model"
)

// StandardTimeSlots returns the clinic's bookable grid: every half hour from
// 09:00 up to 16:30.
func StandardTimeSlots() []string {
	slots := make([]string, 0, 16)
	for hour := 9; hour < 17; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

type Config struct {
	Patients          int
	Doctors           int
	MinSlotsPerDoctor int
	MaxSlotsPerDoctor int
	Seed              uint64
}

// Generate produces a synthetic dataset. The same config always produces the
// same dataset.
func Generate(config Config) ([]model.Patient, []model.Doctor) {
	slots := StandardTimeSlots()
	if config.MinSlotsPerDoctor < 1 {
		config.MinSlotsPerDoctor = 1
	}
	if config.MaxSlotsPerDoctor < config.MinSlotsPerDoctor || config.MaxSlotsPerDoctor > len(slots) {
		config.MaxSlotsPerDoctor = len(slots)
	}

	random := rand.New(rand.NewSource(int64(config.Seed)))
	faker := gofakeit.New(config.Seed)

	patients := make([]model.Patient, 0, config.Patients)
	for i := range config.Patients {
		patients = append(patients, model.Patient{
			ID:   fmt.Sprintf("P%03d", i+1),
			Name: faker.Name(),
		})
	}

	doctors := make([]model.Doctor, 0, config.Doctors)
	for i := range config.Doctors {
		available := config.MinSlotsPerDoctor + random.Intn(config.MaxSlotsPerDoctor-config.MinSlotsPerDoctor+1)

		sampled := make([]string, 0, available)
		for _, index := range random.Perm(len(slots))[:available] {
			sampled = append(sampled, slots[index])
		}
		slices.Sort(sampled)

		doctors = append(doctors, model.Doctor{
			ID:    fmt.Sprintf("D%02d", i+1),
			Name:  "Dr. " + faker.LastName(),
			Slots: sampled,
		})
	}

	return patients, doctors
}
