package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrVaccinationIncomplete = errors.New("petId, vaccine, date and due are required")
	ErrVaccinationDueDate    = errors.New("due date cannot be before the administration date")
)

const dateLayout = "2006-01-02"

type Vaccination struct {
	ID      int64  `json:"id"`
	PetID   int64  `json:"petId"`
	Vaccine string `json:"vaccine"`
	Date    string `json:"date"`
	Due     string `json:"due"`
}

func (v Vaccination) EntityID() int64 {
	return v.ID
}

type Grooming struct {
	ID      int64  `json:"id"`
	PetID   int64  `json:"petId"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
}

func (g Grooming) EntityID() int64 {
	return g.ID
}

type Booking struct {
	ID     int64  `json:"id"`
	PetID  int64  `json:"petId"`
	Type   string `json:"type"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

func (b Booking) EntityID() int64 {
	return b.ID
}

// NewVaccination is the create-vaccination payload. The due/date ordering
// is only checked at creation time, never re-validated afterwards.
type NewVaccination struct {
	PetID   int64  `json:"petId"`
	Vaccine string `json:"vaccine"`
	Date    string `json:"date"`
	Due     string `json:"due"`
}

func (n NewVaccination) Validate() error {
	if n.PetID == 0 || strings.TrimSpace(n.Vaccine) == "" ||
		strings.TrimSpace(n.Date) == "" || strings.TrimSpace(n.Due) == "" {
		return ErrVaccinationIncomplete
	}

	date, err := time.Parse(dateLayout, n.Date)
	if err != nil {
		return ErrVaccinationIncomplete
	}
	due, err := time.Parse(dateLayout, n.Due)
	if err != nil {
		return ErrVaccinationIncomplete
	}

	if due.Before(date) {
		return ErrVaccinationDueDate
	}
	return nil
}
