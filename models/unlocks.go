package models

import (
	"encoding/json"
)

// Unlocks is the set of recipe ids the client has paid for. It serializes as
// a plain JSON array, insertion-ordered, so the persisted form is stable
// across round-trips. Ids are only ever added, never removed.
type Unlocks struct {
	ids []string
}

func (u *Unlocks) Contains(recipeID string) bool {
	for _, id := range u.ids {
		if id == recipeID {
			return true
		}
	}
	return false
}

// Add inserts recipeID into the set and reports whether the set changed.
// Adding an id already present is a no-op.
func (u *Unlocks) Add(recipeID string) bool {
	if u.Contains(recipeID) {
		return false
	}
	u.ids = append(u.ids, recipeID)
	return true
}

func (u *Unlocks) IDs() []string {
	return u.ids
}

func (u Unlocks) MarshalJSON() ([]byte, error) {
	if u.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(u.ids)
}

func (u *Unlocks) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	u.ids = nil
	for _, id := range ids {
		u.Add(id)
	}
	return nil
}

// ParseUnlocks decodes a persisted unlock set. A missing or mangled value is
// treated as the empty set so state read failures never break a page.
func ParseUnlocks(raw string) Unlocks {
	var u Unlocks
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return Unlocks{}
	}
	return u
}
