package types

// MenuItem is a single dish on the menu. Items are immutable once created;
// the only mutations are adding and removing whole items.
type MenuItem struct {
	ID          string `json:"id"`          // UUID v7, assigned on creation.
	Name        string `json:"name"`        // Dish name (required).
	Description string `json:"description"` // Short description (required).
	Course      Course `json:"course"`      // Starters, Mains or Dessert.
	Price       int64  `json:"price"`       // Whole currency units, never negative.
}

// Validate checks the invariants a store relies on. It does not repeat the
// entry form rules; items built by the form always pass.
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return ErrInvalidID
	}
	if !m.Course.Valid() {
		return ErrInvalidCourse
	}
	if m.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
