package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	MaxWeightKg      = 200.0
	MaxWeightDigits  = 2
	MsgNameRequired  = "Name is required"
	MsgTypeRequired  = "Type is required"
	MsgBreedRequired = "Breed is required"
	MsgGenderReq     = "Gender is required"
	MsgSizeRequired  = "Size is required"
	MsgWeightRange   = "Weight must be between 0 and 200 kg"
	MsgWeightDigits  = "Weight can have at most 2 decimal places"
	MsgDOBFuture     = "Date of birth cannot be in the future"
)

// ValidatePet checks every editable field independently and collects the
// failures into one field-to-message map. An empty map means the pet may be
// saved. No I/O and no store access happens here.
func ValidatePet(pet Pet) map[string]string {
	return ValidatePetAt(pet, time.Now())
}

func ValidatePetAt(pet Pet, now time.Time) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(pet.Name) == "" {
		errs["name"] = MsgNameRequired
	}
	if strings.TrimSpace(pet.Type) == "" {
		errs["type"] = MsgTypeRequired
	}
	if strings.TrimSpace(pet.Breed) == "" {
		errs["breed"] = MsgBreedRequired
	}
	if strings.TrimSpace(pet.Gender) == "" {
		errs["gender"] = MsgGenderReq
	}
	if strings.TrimSpace(pet.Size) == "" {
		errs["size"] = MsgSizeRequired
	}

	if pet.WeightKg < 0 || pet.WeightKg > MaxWeightKg {
		errs["weightKg"] = MsgWeightRange
	} else if weightDecimals(pet.WeightKg) > MaxWeightDigits {
		errs["weightKg"] = MsgWeightDigits
	}

	// Unset or unparseable dates are left to the required-field rules;
	// only a well-formed future date is rejected here.
	if pet.DOB != "" {
		if dob, err := time.Parse(dateLayout, pet.DOB); err == nil {
			endOfToday := time.Date(now.Year(), now.Month(), now.Day(),
				23, 59, 59, 0, time.UTC)
			if dob.After(endOfToday) {
				errs["dob"] = MsgDOBFuture
			}
		}
	}

	return errs
}

// weightDecimals counts fractional digits on the shortest decimal
// rendering of w, so 10.12 has two and 10.0 has none.
func weightDecimals(w float64) int {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
