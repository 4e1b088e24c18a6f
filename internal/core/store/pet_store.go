package store

import (
	"github.com/petboard/petboard/internal/core/domain"
)

// PetStore is the pet collection store plus the targeted single-entity
// operations the optimistic edit cycle needs. It is the single source of
// truth for the pet under edit; only the update orchestrator writes
// through these methods.
type PetStore struct {
	*Store[domain.Pet]
}

func NewPetStore(fetch Fetch[domain.Pet]) *PetStore {
	return &PetStore{Store: New[domain.Pet](fetch)}
}

// Get returns a deep copy so callers can hold the entity across later
// store mutations, which rollback relies on.
func (s *PetStore) Get(id int64) (domain.Pet, bool) {
	pet, ok := s.Store.Get(id)
	if !ok {
		return domain.Pet{}, false
	}
	return pet.Clone(), true
}

// BeginOptimisticUpdate merges the patch onto the entity in place, a
// shallow field overwrite leaving all other entities untouched. An
// absent id is a silent miss.
func (s *PetStore) BeginOptimisticUpdate(id int64, patch domain.PetPatch) {
	pet, ok := s.Store.Get(id)
	if !ok {
		return
	}
	updated := pet.Clone()
	patch.Apply(&updated)
	s.replace(id, updated)
}

// ConfirmUpdate replaces the entity wholesale with the server-returned
// pet, reconciling any server-normalized fields.
func (s *PetStore) ConfirmUpdate(id int64, updated domain.Pet) {
	s.replace(id, updated.Clone())
}

// Rollback replaces the entity wholesale with a previously captured
// copy, restoring the exact pre-edit state after a failed save.
func (s *PetStore) Rollback(id int64, original domain.Pet) {
	s.replace(id, original.Clone())
}
