package usecase

import "fmt"

// NotFoundError reports an id that is absent from its collection. Kind is
// the entity name used in the message ("Book" or "Category").
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with an ID: %s Not Found", e.Kind, e.ID)
}

// NewBookNotFound returns the error for a missing book id.
func NewBookNotFound(id string) error {
	return &NotFoundError{Kind: "Book", ID: id}
}

// NewCategoryNotFound returns the error for a missing category id.
func NewCategoryNotFound(id string) error {
	return &NotFoundError{Kind: "Category", ID: id}
}

// AlreadyExistsError reports a category name that is already taken. The
// message is the Serbian text the API has always returned.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("Област са називом: %s већ постоји.", e.Name)
}
