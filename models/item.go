package models

// Item is a resource owned by exactly one user. The owner reference is a
// plain identifier; the full owner record is never embedded.
type Item struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// OwnerID references the owning user. Set by the server from the
	// authenticated caller, never trusted from client input.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreate carries the fields accepted when creating an item.
// A client-supplied OwnerID is ignored: the repository forces the owner
// from the authenticated caller.
type ItemCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OwnerID     int64  `json:"owner_id,omitempty"`
}

// ItemUpdate is a partial-update patch for an item.
// Nil fields are left untouched.
type ItemUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	OwnerID     *int64  `json:"owner_id,omitempty"`
}
