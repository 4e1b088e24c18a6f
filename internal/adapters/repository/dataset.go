// Package repository holds the in-memory dataset behind the development
// mock API. It stands in for the real backend the dashboard syncs
// against; nothing here persists across restarts.
package repository

import (
	"slices"
	"sync"

	"github.com/petboard/petboard/internal/core/domain"
)

type Dataset struct {
	mu sync.RWMutex

	clients      []domain.Client
	pets         []domain.Pet
	vaccinations []domain.Vaccination
	grooming     []domain.Grooming
	bookings     []domain.Booking

	nextVaccinationID int64
}

func NewDataset() *Dataset {
	return &Dataset{nextVaccinationID: 1}
}

func (d *Dataset) Clients() []domain.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.clients)
}

func (d *Dataset) Pets() []domain.Pet {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Pet, len(d.pets))
	for i, p := range d.pets {
		out[i] = p.Clone()
	}
	return out
}

func (d *Dataset) Vaccinations() []domain.Vaccination {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.vaccinations)
}

func (d *Dataset) Grooming() []domain.Grooming {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.grooming)
}

func (d *Dataset) Bookings() []domain.Booking {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.bookings)
}

// PatchPet merges the non-nil patch fields onto the stored pet and
// returns the full updated entity, as the real API does.
func (d *Dataset) PatchPet(id int64, patch domain.PetPatch) (domain.Pet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, p := range d.pets {
		if p.ID == id {
			updated := p.Clone()
			patch.Apply(&updated)
			d.pets[i] = updated
			return updated.Clone(), nil
		}
	}
	return domain.Pet{}, domain.ErrPetNotFound
}

// AddVaccination validates the payload, assigns the next id and stores
// the record.
func (d *Dataset) AddVaccination(input domain.NewVaccination) (domain.Vaccination, error) {
	if err := input.Validate(); err != nil {
		return domain.Vaccination{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	created := domain.Vaccination{
		ID:      d.nextVaccinationID,
		PetID:   input.PetID,
		Vaccine: input.Vaccine,
		Date:    input.Date,
		Due:     input.Due,
	}
	d.nextVaccinationID++
	d.vaccinations = append(d.vaccinations, created)
	return created, nil
}
