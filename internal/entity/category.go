package entity

// Category is one record in the categories collection file. Names are
// unique across the collection; the store enforces this at creation.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}
