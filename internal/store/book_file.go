package store

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookrepo/internal/collation"
	"bookrepo/internal/entity"
	"bookrepo/internal/usecase"
)

// createdAtLayout renders dates as dd.mm.yyyy. with a trailing dot, the
// format every existing record uses.
const createdAtLayout = "02.01.2006."

// BookFile stores the book collection as one JSON array on disk.
type BookFile struct {
	file         *jsonFile[entity.Book]
	collator     *collation.Collator
	baseImageURL string
	log          *slog.Logger

	newID func() string
	now   func() time.Time
}

// NewBookFile builds a book repository over the JSON file at path. Image
// links are normalized against baseImageURL on every write.
func NewBookFile(path, baseImageURL string, collator *collation.Collator, opts ...Option) *BookFile {
	o := resolveOptions(opts)
	return &BookFile{
		file:         newJSONFile[entity.Book](path, o),
		collator:     collator,
		baseImageURL: baseImageURL,
		log:          o.logger,
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// List returns every book ordered according to p.
func (r *BookFile) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, error) {
	r.log.Debug("listing books", "sort", p.Sort, "direction", p.Direction)

	books := r.file.load()
	r.sort(books, p)
	return books, nil
}

// Search returns the books matching term, in default list order. The term
// is lowercased with the collection's locale and matched as a substring of
// the title, an exact element of the author list, or a substring of the
// inventory number. The author clause really is an exact match, not a
// substring: callers depend on the historical behavior.
func (r *BookFile) Search(ctx context.Context, term string) ([]entity.Book, error) {
	lowered := r.collator.Lower(term)
	r.log.Debug("searching books", "term", lowered)

	matches := []entity.Book{}
	for _, b := range r.loadSorted() {
		if r.matches(b, lowered) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// GetByID returns the book with the given id.
func (r *BookFile) GetByID(ctx context.Context, id string) (entity.Book, error) {
	r.log.Debug("getting book", "id", id)

	for _, b := range r.loadSorted() {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, usecase.NewBookNotFound(id)
}

// Create assigns a fresh id and createdAt stamp, normalizes the image link
// and appends the book to the collection. Any client-supplied id is
// discarded.
func (r *BookFile) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("creating book", "title", b.Title)

	books := r.loadSorted()
	b.ID = r.newID()
	b.CreatedAt = r.now().Format(createdAtLayout)
	b.Image = r.normalizeImage(b.Image)
	books = append(books, b)

	if err := r.file.persist(books); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// Update replaces the book with the given id in place, keeping the
// collection order. The id always comes from the path, never the payload,
// and createdAt stays whatever creation stamped it as.
func (r *BookFile) Update(ctx context.Context, id string, changed entity.Book) (entity.Book, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("updating book", "id", id)

	books := r.loadSorted()
	idx := slices.IndexFunc(books, func(b entity.Book) bool { return b.ID == id })
	if idx < 0 {
		return entity.Book{}, usecase.NewBookNotFound(id)
	}

	changed.ID = id
	changed.CreatedAt = books[idx].CreatedAt
	changed.Image = r.normalizeImage(changed.Image)
	books[idx] = changed

	if err := r.file.persist(books); err != nil {
		return entity.Book{}, err
	}
	return changed, nil
}

// Delete removes the book with the given id. A missing id fails with
// NotFound and leaves the file untouched.
func (r *BookFile) Delete(ctx context.Context, id string) (bool, error) {
	r.file.begin()
	defer r.file.end()

	r.log.Debug("deleting book", "id", id)

	books := r.loadSorted()
	n := len(books)
	books = slices.DeleteFunc(books, func(b entity.Book) bool { return b.ID == id })
	if len(books) == n {
		return false, usecase.NewBookNotFound(id)
	}

	if err := r.file.persist(books); err != nil {
		return false, err
	}
	return true, nil
}

// loadSorted is the base order for every read: title ascending.
func (r *BookFile) loadSorted() []entity.Book {
	books := r.file.load()
	r.sort(books, usecase.ListParams{Sort: usecase.SortByTitle, Direction: usecase.Ascending})
	return books
}

func (r *BookFile) sort(books []entity.Book, p usecase.ListParams) {
	var cmp func(a, b entity.Book) int
	switch p.Sort {
	case usecase.SortByCreatedAt:
		// The fixed-width date format makes lexicographic comparison
		// stand in for chronological order.
		cmp = func(a, b entity.Book) int { return strings.Compare(a.CreatedAt, b.CreatedAt) }
	default:
		cmp = func(a, b entity.Book) int { return r.collator.Compare(a.Title, b.Title) }
	}
	if p.Direction == usecase.Descending {
		asc := cmp
		cmp = func(a, b entity.Book) int { return -asc(a, b) }
	}
	slices.SortStableFunc(books, cmp)
}

func (r *BookFile) matches(b entity.Book, lowered string) bool {
	if strings.Contains(r.collator.Lower(b.Title), lowered) {
		return true
	}
	if slices.Contains(b.Authors, lowered) {
		return true
	}
	return strings.Contains(strconv.FormatInt(b.InventoryNumber, 10), lowered)
}

// normalizeImage derives the canonical image reference from a raw share
// link: the segment after the first "=" appended to the base URL. Blank
// input clears the field; a value without "=" is kept as provided.
func (r *BookFile) normalizeImage(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "=")
	if len(parts) < 2 {
		return &trimmed
	}
	normalized := r.baseImageURL + parts[1]
	return &normalized
}
