package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petboard/petboard/internal/core/domain"
)

func validPet() domain.Pet {
	return domain.Pet{
		ID:       1,
		ClientID: 1,
		Name:     "Bailey",
		Type:     "Dog",
		Breed:    "Golden Retriever",
		Size:     "Large",
		Gender:   "Male",
		WeightKg: 32.5,
		DOB:      "2020-01-15",
	}
}

func TestValidatePet(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success: valid pet has no errors", func(t *testing.T) {
		errs := domain.ValidatePetAt(validPet(), now)
		assert.Empty(t, errs)
	})

	t.Run("Required fields collected together", func(t *testing.T) {
		pet := validPet()
		pet.Name = "   "
		pet.Type = ""
		pet.Breed = ""
		pet.Gender = ""
		pet.Size = ""

		errs := domain.ValidatePetAt(pet, now)

		assert.Equal(t, "Name is required", errs["name"])
		assert.Equal(t, "Type is required", errs["type"])
		assert.Equal(t, "Breed is required", errs["breed"])
		assert.Equal(t, "Gender is required", errs["gender"])
		assert.Equal(t, "Size is required", errs["size"])
	})

	t.Run("Future date of birth rejected", func(t *testing.T) {
		pet := validPet()
		pet.DOB = "2999-01-01"

		errs := domain.ValidatePetAt(pet, now)
		assert.Equal(t, "Date of birth cannot be in the future", errs["dob"])
	})

	t.Run("Today is not a future date of birth", func(t *testing.T) {
		pet := validPet()
		pet.DOB = "2025-03-01"

		errs := domain.ValidatePetAt(pet, now)
		assert.NotContains(t, errs, "dob")
	})

	weightTests := []struct {
		name   string
		weight float64
		want   string
	}{
		{"Negative weight", -1, "Weight must be between 0 and 200 kg"},
		{"Weight above range", 201, "Weight must be between 0 and 200 kg"},
		{"Too many decimal places", 10.123, "Weight can have at most 2 decimal places"},
		{"Whole number allowed", 10, ""},
		{"Two decimals allowed", 10.12, ""},
		{"Lower bound allowed", 0, ""},
		{"Upper bound allowed", 200, ""},
	}

	for _, tt := range weightTests {
		t.Run(tt.name, func(t *testing.T) {
			pet := validPet()
			pet.WeightKg = tt.weight

			errs := domain.ValidatePetAt(pet, now)
			if tt.want == "" {
				assert.NotContains(t, errs, "weightKg")
			} else {
				assert.Equal(t, tt.want, errs["weightKg"])
			}
		})
	}
}

func TestNewVaccination_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		input := domain.NewVaccination{PetID: 1, Vaccine: "Rabies", Date: "2025-01-10", Due: "2026-01-10"}
		assert.NoError(t, input.Validate())
	})

	t.Run("Due equal to date allowed", func(t *testing.T) {
		input := domain.NewVaccination{PetID: 1, Vaccine: "Rabies", Date: "2025-01-10", Due: "2025-01-10"}
		assert.NoError(t, input.Validate())
	})

	t.Run("Due before date rejected", func(t *testing.T) {
		input := domain.NewVaccination{PetID: 1, Vaccine: "Rabies", Date: "2025-01-10", Due: "2024-01-10"}
		assert.ErrorIs(t, input.Validate(), domain.ErrVaccinationDueDate)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		input := domain.NewVaccination{PetID: 1, Vaccine: "", Date: "2025-01-10", Due: "2026-01-10"}
		assert.ErrorIs(t, input.Validate(), domain.ErrVaccinationIncomplete)
	})
}
