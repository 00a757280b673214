package form

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TechDraft is one unvalidated technology row. Knowledge stays raw text
// until the schema coerces it; ID is a client-assigned identifier that
// survives append/remove, so deletion targets an entry, not a position.
type TechDraft struct {
	ID        string `json:"id" form:"id"`
	Title     string `json:"title" form:"title" validate:"required"`
	Knowledge string `json:"knowledge" form:"knowledge" validate:"required"`
}

// NewTechDraft returns an empty row with a fresh identifier.
func NewTechDraft() TechDraft {
	return TechDraft{ID: uuid.NewString(), Knowledge: "0"}
}

// TechList is the ordered collection of technology rows under edit.
type TechList []TechDraft

// Append adds one empty row at the end and returns the grown list.
func (l TechList) Append() TechList {
	return append(l, NewTechDraft())
}

// Remove deletes the entry with the given ID; later entries shift up.
// Unknown IDs leave the list unchanged.
func (l TechList) Remove(id string) TechList {
	for i, t := range l {
		if t.ID == id {
			return append(l[:i:i], l[i+1:]...)
		}
	}
	return l
}

// UnmarshalParam decodes the "techs" form field, a JSON array produced by
// the page's row editor. Entries submitted without an ID get one assigned.
func (l *TechList) UnmarshalParam(src string) error {
	var entries []TechDraft
	if err := json.Unmarshal([]byte(src), &entries); err != nil {
		return fmt.Errorf("techs: %w", err)
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
	}
	*l = entries
	return nil
}
