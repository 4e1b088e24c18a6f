package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/petboard/petboard/internal/core/domain"
	"github.com/petboard/petboard/internal/core/store"
)

var (
	ErrAlreadyEditing   = errors.New("an edit is already in progress")
	ErrNotEditing       = errors.New("no edit in progress")
	ErrSaveInFlight     = errors.New("a save is already in flight for this pet")
	ErrValidationFailed = errors.New("validation failed")
)

// SessionState is the caller-visible state of one edit session.
type SessionState string

const (
	StateViewing SessionState = "viewing"
	StateEditing SessionState = "editing"
	StateSaving  SessionState = "saving"
)

// PetUpdater is the slice of the remote gateway the editor needs.
type PetUpdater interface {
	UpdatePet(ctx context.Context, id int64, patch domain.PetPatch) (domain.Pet, error)
}

// Editor creates edit sessions and enforces the one-in-flight-save-per-
// pet rule across them. Sessions for different pets are fully
// independent.
type Editor struct {
	pets     *store.PetStore
	updater  PetUpdater
	notifier Notifier

	mu       sync.Mutex
	inFlight map[int64]bool
}

func NewEditor(pets *store.PetStore, updater PetUpdater, notifier Notifier) *Editor {
	return &Editor{
		pets:     pets,
		updater:  updater,
		notifier: notifier,
		inFlight: make(map[int64]bool),
	}
}

// Session opens an edit session for one pet, starting in the viewing
// state. The pet must exist in the current snapshot.
func (e *Editor) Session(petID int64) (*EditSession, error) {
	if _, ok := e.pets.Get(petID); !ok {
		return nil, fmt.Errorf("session for pet %d: %w", petID, domain.ErrPetNotFound)
	}
	return &EditSession{editor: e, petID: petID, state: StateViewing}, nil
}

func (e *Editor) acquireSave(petID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[petID] {
		return false
	}
	e.inFlight[petID] = true
	return true
}

func (e *Editor) releaseSave(petID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, petID)
}

// EditSession drives a single pet from editable draft to confirmed
// persisted state:
//
//	viewing --StartEdit--> editing --Save--> saving --ok--> viewing
//	                          ^               |
//	                          +---on failure--+  (store rolled back,
//	                          |                   draft reset to original)
//	                          +--validation error (no store write, no call)
//
// Cancel from editing discards the draft with no network call. Store
// mutations and state transitions are atomic from the caller's
// perspective; the only suspension point is the network update.
type EditSession struct {
	editor *Editor
	petID  int64

	mu          sync.Mutex
	state       SessionState
	draft       domain.Pet
	fieldErrors map[string]string
}

func (s *EditSession) PetID() int64 {
	return s.petID
}

func (s *EditSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FieldErrors returns the per-field message map from the last rejected save,
// empty once a save passes validation or editing restarts.
func (s *EditSession) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors
}

// StartEdit moves the session from viewing to editing, seeding the draft
// from the current
// store entity.
func (s *EditSession) StartEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateViewing {
		return ErrAlreadyEditing
	}

	pet, ok := s.editor.pets.Get(s.petID)
	if !ok {
		return fmt.Errorf("start edit for pet %d: %w", s.petID, domain.ErrPetNotFound)
	}

	s.draft = pet
	s.fieldErrors = nil
	s.state = StateEditing
	return nil
}

// Draft returns a copy of the current draft.
func (s *EditSession) Draft() domain.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// UpdateDraft applies an in-memory edit to the draft. Nothing reaches
// the store or the network until Save.
func (s *EditSession) UpdateDraft(edit func(pet *domain.Pet)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrNotEditing
	}
	edit(&s.draft)
	return nil
}

// Cancel discards the draft and returns to viewing. No network call is
// made and the store is untouched.
func (s *EditSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.draft = domain.Pet{}
	s.fieldErrors = nil
	s.state = StateViewing
	return nil
}

// Save validates the draft, applies it optimistically to the pet store,
// and issues the update request carrying only the changed fields. On
// success the server entity replaces the optimistic one and the session
// returns to viewing. On failure the store is rolled back to the exact
// pre-edit entity, the draft is reset to it, and the session stays in
// editing so the user can retry or cancel without re-entering data.
func (s *EditSession) Save(ctx context.Context) error {
	s.mu.Lock()

	if s.state == StateSaving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if s.state != StateEditing {
		s.mu.Unlock()
		return ErrNotEditing
	}

	if errs := domain.ValidatePet(s.draft); len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		s.editor.notifier.Notify(newNotification(NotifyError, "Please fix validation errors"))
		return ErrValidationFailed
	}
	s.fieldErrors = nil

	original, ok := s.editor.pets.Get(s.petID)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("save pet %d: %w", s.petID, domain.ErrPetNotFound)
	}

	if !s.editor.acquireSave(s.petID) {
		s.mu.Unlock()
		return ErrSaveInFlight
	}

	patch := domain.DiffPet(original, s.draft)
	s.state = StateSaving
	s.mu.Unlock()

	s.editor.pets.BeginOptimisticUpdate(s.petID, patch)

	updated, err := s.editor.updater.UpdatePet(ctx, s.petID, patch)

	s.editor.releaseSave(s.petID)

	s.mu.Lock()
	if err != nil {
		s.editor.pets.Rollback(s.petID, original)
		s.draft = original.Clone()
		s.state = StateEditing
		s.mu.Unlock()
		s.editor.notifier.Notify(newNotification(NotifyError, err.Error()))
		return fmt.Errorf("save pet %d: %w", s.petID, err)
	}

	s.editor.pets.ConfirmUpdate(s.petID, updated)
	s.draft = domain.Pet{}
	s.state = StateViewing
	s.mu.Unlock()

	s.editor.notifier.Notify(newNotification(NotifySuccess, "Pet updated successfully"))
	return nil
}
