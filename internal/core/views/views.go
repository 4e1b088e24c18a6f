// Package views holds the derived, memoized read-only projections over
// the resource store snapshots. Selectors are pure: they recompute only
// when a source snapshot version changed and otherwise return the
// previously built result unchanged.
package views

import (
	"sync"

	"github.com/petboard/petboard/internal/core/domain"
	"github.com/petboard/petboard/internal/core/store"
)

type Views struct {
	clients      *store.Store[domain.Client]
	pets         *store.PetStore
	vaccinations *store.Store[domain.Vaccination]
	grooming     *store.Store[domain.Grooming]
	bookings     *store.Store[domain.Booking]

	mu sync.Mutex

	joined struct {
		clientsVersion uint64
		petsVersion    uint64
		valid          bool
		result         []domain.ClientWithPets
	}

	vaccByPet map[int64]*filtered[domain.Vaccination]
	groomPet  map[int64]*filtered[domain.Grooming]
	bookByPet map[int64]*filtered[domain.Booking]
}

type filtered[T store.Entity] struct {
	version uint64
	result  []T
}

func New(
	clients *store.Store[domain.Client],
	pets *store.PetStore,
	vaccinations *store.Store[domain.Vaccination],
	grooming *store.Store[domain.Grooming],
	bookings *store.Store[domain.Booking],
) *Views {
	return &Views{
		clients:      clients,
		pets:         pets,
		vaccinations: vaccinations,
		grooming:     grooming,
		bookings:     bookings,
		vaccByPet:    make(map[int64]*filtered[domain.Vaccination]),
		groomPet:     make(map[int64]*filtered[domain.Grooming]),
		bookByPet:    make(map[int64]*filtered[domain.Booking]),
	}
}

// ClientsWithPets joins every client to the pets whose clientId matches,
// in client snapshot order.
func (v *Views) ClientsWithPets() []domain.ClientWithPets {
	clients, clientsVersion := v.clients.Snapshot()
	pets, petsVersion := v.pets.Snapshot()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.joined.valid &&
		v.joined.clientsVersion == clientsVersion &&
		v.joined.petsVersion == petsVersion {
		return v.joined.result
	}

	result := make([]domain.ClientWithPets, 0, len(clients))
	for _, client := range clients {
		var owned []domain.Pet
		for _, pet := range pets {
			if pet.ClientID == client.ID {
				owned = append(owned, pet)
			}
		}
		result = append(result, domain.ClientWithPets{Client: client, Pets: owned})
	}

	v.joined.clientsVersion = clientsVersion
	v.joined.petsVersion = petsVersion
	v.joined.valid = true
	v.joined.result = result
	return result
}

func (v *Views) PetVaccinations(petID int64) []domain.Vaccination {
	items, version := v.vaccinations.Snapshot()
	v.mu.Lock()
	defer v.mu.Unlock()
	return selectByPet(v.vaccByPet, petID, items, version,
		func(x domain.Vaccination) int64 { return x.PetID })
}

func (v *Views) PetGrooming(petID int64) []domain.Grooming {
	items, version := v.grooming.Snapshot()
	v.mu.Lock()
	defer v.mu.Unlock()
	return selectByPet(v.groomPet, petID, items, version,
		func(x domain.Grooming) int64 { return x.PetID })
}

func (v *Views) PetBookings(petID int64) []domain.Booking {
	items, version := v.bookings.Snapshot()
	v.mu.Lock()
	defer v.mu.Unlock()
	return selectByPet(v.bookByPet, petID, items, version,
		func(x domain.Booking) int64 { return x.PetID })
}

// selectByPet filters items to one pet, reusing the cached result while
// the source version is unchanged. Caller holds the views mutex.
func selectByPet[T store.Entity](
	cache map[int64]*filtered[T],
	petID int64,
	items []T,
	version uint64,
	owner func(T) int64,
) []T {
	if entry, ok := cache[petID]; ok && entry.version == version {
		return entry.result
	}

	result := make([]T, 0)
	for _, item := range items {
		if owner(item) == petID {
			result = append(result, item)
		}
	}

	cache[petID] = &filtered[T]{version: version, result: result}
	return result
}
