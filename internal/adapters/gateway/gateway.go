// Package gateway talks to the pet-management REST API. The Gateway
// interface is the contract the stores and the update orchestrator
// consume; the concrete implementations are the plain HTTP client and a
// redis-cached decorator for the list fetches.
package gateway

import (
	"context"

	"github.com/petboard/petboard/internal/core/domain"
)

type Gateway interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListPets(ctx context.Context) ([]domain.Pet, error)
	ListVaccinations(ctx context.Context) ([]domain.Vaccination, error)
	ListGrooming(ctx context.Context) ([]domain.Grooming, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	UpdatePet(ctx context.Context, id int64, patch domain.PetPatch) (domain.Pet, error)
	CreateVaccination(ctx context.Context, input domain.NewVaccination) (domain.Vaccination, error)
}
