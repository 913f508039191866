package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"bookrepo/internal/entity"
	"bookrepo/internal/usecase"
)

// CategoryFile stores the category collection as one JSON array on disk.
type CategoryFile struct {
	file *jsonFile[entity.Category]
	log  *slog.Logger

	newID func() string
}

// NewCategoryFile builds a category repository over the JSON file at path.
func NewCategoryFile(path string, opts ...Option) *CategoryFile {
	o := resolveOptions(opts)
	return &CategoryFile{
		file:  newJSONFile[entity.Category](path, o),
		log:   o.logger,
		newID: uuid.NewString,
	}
}

// List returns every category in file order.
func (r *CategoryFile) List(ctx context.Context) ([]entity.Category, error) {
	r.log.Debug("listing categories")

	return r.file.load(), nil
}

// GetByID returns the category with the given id.
func (r *CategoryFile) GetByID(ctx context.Context, id string) (entity.Category, error) {
	r.log.Debug("getting category", "id", id)

	for _, c := range r.file.load() {
		if c.ID == id {
			return c, nil
		}
	}
	return entity.Category{}, usecase.NewCategoryNotFound(id)
}

// Create assigns a fresh id and appends the category. Names are unique
// case-sensitively; a duplicate fails before anything is written.
func (r *CategoryFile) Create(ctx context.Context, c entity.Category) (entity.Category, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("creating category", "name", c.Name)

	categories := r.file.load()
	for _, existing := range categories {
		if existing.Name == c.Name {
			return entity.Category{}, &usecase.AlreadyExistsError{Name: c.Name}
		}
	}

	c.ID = r.newID()
	categories = append(categories, c)

	if err := r.file.persist(categories); err != nil {
		return entity.Category{}, err
	}
	return c, nil
}

// Update replaces the category with the given id in place. Uniqueness is a
// create-time invariant only and is not re-checked here.
func (r *CategoryFile) Update(ctx context.Context, id string, changed entity.Category) (entity.Category, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("updating category", "id", id)

	categories := r.file.load()
	idx := slices.IndexFunc(categories, func(c entity.Category) bool { return c.ID == id })
	if idx < 0 {
		return entity.Category{}, usecase.NewCategoryNotFound(id)
	}

	changed.ID = id
	categories[idx] = changed

	if err := r.file.persist(categories); err != nil {
		return entity.Category{}, err
	}
	return changed, nil
}

// Delete removes the category with the given id. A missing id fails with
// NotFound and leaves the file untouched.
func (r *CategoryFile) Delete(ctx context.Context, id string) (bool, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("deleting category", "id", id)

	categories := r.file.load()
	n := len(categories)
	categories = slices.DeleteFunc(categories, func(c entity.Category) bool { return c.ID == id })
	if len(categories) == n {
		return false, usecase.NewCategoryNotFound(id)
	}

	if err := r.file.persist(categories); err != nil {
		return false, err
	}
	return true, nil
}
