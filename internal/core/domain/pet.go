package domain

import (
	"errors"
	"slices"
)

var (
	ErrPetNotFound = errors.New("pet not found")
)

type Pet struct {
	ID            int64    `json:"id"`
	ClientID      int64    `json:"clientId"`
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	Type          string   `json:"type"`
	Breed         string   `json:"breed"`
	Size          string   `json:"size"`
	Temper        string   `json:"temper"`
	Color         string   `json:"color"`
	Gender        string   `json:"gender"`
	WeightKg      float64  `json:"weightKg"`
	DOB           string   `json:"dob"`
	Attributes    []string `json:"attributes"`
	Notes         *string  `json:"notes"`
	CustomerNotes string   `json:"customerNotes"`
	Photos        []string `json:"photos"`
}

func (p Pet) EntityID() int64 {
	return p.ID
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Pet) Clone() Pet {
	out := p
	out.Attributes = slices.Clone(p.Attributes)
	out.Photos = slices.Clone(p.Photos)
	if p.Notes != nil {
		notes := *p.Notes
		out.Notes = &notes
	}
	return out
}

// PetPatch carries the fields of a partial pet update. Nil fields are
// "not changed" and are omitted from the PATCH body on the wire.
type PetPatch struct {
	Name          *string   `json:"name,omitempty"`
	Status        *string   `json:"status,omitempty"`
	Type          *string   `json:"type,omitempty"`
	Breed         *string   `json:"breed,omitempty"`
	Size          *string   `json:"size,omitempty"`
	Temper        *string   `json:"temper,omitempty"`
	Color         *string   `json:"color,omitempty"`
	Gender        *string   `json:"gender,omitempty"`
	WeightKg      *float64  `json:"weightKg,omitempty"`
	DOB           *string   `json:"dob,omitempty"`
	Attributes    *[]string `json:"attributes,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CustomerNotes *string   `json:"customerNotes,omitempty"`
	Photos        *[]string `json:"photos,omitempty"`
}

func (p PetPatch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil && p.Type == nil && p.Breed == nil &&
		p.Size == nil && p.Temper == nil && p.Color == nil && p.Gender == nil &&
		p.WeightKg == nil && p.DOB == nil && p.Attributes == nil &&
		p.Notes == nil && p.CustomerNotes == nil && p.Photos == nil
}

// Apply overwrites the non-nil fields of the patch onto pet, a shallow
// field-by-field merge. Unset fields are left untouched.
func (p PetPatch) Apply(pet *Pet) {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Status != nil {
		pet.Status = *p.Status
	}
	if p.Type != nil {
		pet.Type = *p.Type
	}
	if p.Breed != nil {
		pet.Breed = *p.Breed
	}
	if p.Size != nil {
		pet.Size = *p.Size
	}
	if p.Temper != nil {
		pet.Temper = *p.Temper
	}
	if p.Color != nil {
		pet.Color = *p.Color
	}
	if p.Gender != nil {
		pet.Gender = *p.Gender
	}
	if p.WeightKg != nil {
		pet.WeightKg = *p.WeightKg
	}
	if p.DOB != nil {
		pet.DOB = *p.DOB
	}
	if p.Attributes != nil {
		pet.Attributes = slices.Clone(*p.Attributes)
	}
	if p.Notes != nil {
		notes := *p.Notes
		pet.Notes = &notes
	}
	if p.CustomerNotes != nil {
		pet.CustomerNotes = *p.CustomerNotes
	}
	if p.Photos != nil {
		pet.Photos = slices.Clone(*p.Photos)
	}
}

// DiffPet computes the patch that turns original into draft. Only fields
// whose values differ are set, so a save sends exactly the edited fields.
func DiffPet(original, draft Pet) PetPatch {
	var patch PetPatch
	if draft.Name != original.Name {
		patch.Name = &draft.Name
	}
	if draft.Status != original.Status {
		patch.Status = &draft.Status
	}
	if draft.Type != original.Type {
		patch.Type = &draft.Type
	}
	if draft.Breed != original.Breed {
		patch.Breed = &draft.Breed
	}
	if draft.Size != original.Size {
		patch.Size = &draft.Size
	}
	if draft.Temper != original.Temper {
		patch.Temper = &draft.Temper
	}
	if draft.Color != original.Color {
		patch.Color = &draft.Color
	}
	if draft.Gender != original.Gender {
		patch.Gender = &draft.Gender
	}
	if draft.WeightKg != original.WeightKg {
		patch.WeightKg = &draft.WeightKg
	}
	if draft.DOB != original.DOB {
		patch.DOB = &draft.DOB
	}
	if !slices.Equal(draft.Attributes, original.Attributes) {
		attrs := slices.Clone(draft.Attributes)
		patch.Attributes = &attrs
	}
	if !equalNotes(draft.Notes, original.Notes) && draft.Notes != nil {
		notes := *draft.Notes
		patch.Notes = &notes
	}
	if draft.CustomerNotes != original.CustomerNotes {
		patch.CustomerNotes = &draft.CustomerNotes
	}
	if !slices.Equal(draft.Photos, original.Photos) {
		photos := slices.Clone(draft.Photos)
		patch.Photos = &photos
	}
	return patch
}

func equalNotes(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// AddAttribute appends tag unless it is already present. Order is
// preserved and the input slice is never mutated.
func AddAttribute(attrs []string, tag string) []string {
	if slices.Contains(attrs, tag) {
		return slices.Clone(attrs)
	}
	out := make([]string, 0, len(attrs)+1)
	out = append(out, attrs...)
	return append(out, tag)
}

// RemoveAttribute drops every occurrence of tag, preserving the order of
// the remaining tags.
func RemoveAttribute(attrs []string, tag string) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a != tag {
			out = append(out, a)
		}
	}
	return out
}
