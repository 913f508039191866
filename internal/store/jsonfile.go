package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// WriteError reports a failed rewrite of a collection file. A failed
// persist means the mutation was lost, so it always surfaces to the caller.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing collection file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Option configures a file-backed store.
type Option func(*options)

type options struct {
	singleWriter bool
	logger       *slog.Logger
}

// WithSingleWriter serializes each load-mutate-persist sequence behind a
// per-collection mutex. The default matches the source system: no mutual
// exclusion, last writer wins.
func WithSingleWriter() Option {
	return func(o *options) { o.singleWriter = true }
}

// WithLogger routes the store's logs to a specific logger instead of
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// jsonFile is a whole-document JSON array on disk. Every read decodes the
// full file and every write truncates and rewrites it; there is no partial
// or append path.
type jsonFile[T any] struct {
	path string
	log  *slog.Logger

	locking bool
	mu      sync.Mutex
}

func newJSONFile[T any](path string, o options) *jsonFile[T] {
	return &jsonFile[T]{path: path, log: o.logger, locking: o.singleWriter}
}

// begin and end bracket a load-mutate-persist sequence. They are no-ops
// unless single-writer mode is enabled.
func (f *jsonFile[T]) begin() {
	if f.locking {
		f.mu.Lock()
	}
}

func (f *jsonFile[T]) end() {
	if f.locking {
		f.mu.Unlock()
	}
}

// load reads the whole collection. A missing, unreadable or corrupt file
// degrades to an empty collection; only the log records the fault.
func (f *jsonFile[T]) load() []T {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		f.log.Warn("reading collection file failed", "path", f.path, "err", err)
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		f.log.Warn("decoding collection file failed", "path", f.path, "err", err)
		return nil
	}
	return items
}

// persist replaces the entire file with the JSON encoding of items.
func (f *jsonFile[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		f.log.Error("writing collection file failed", "path", f.path, "err", err)
		return &WriteError{Path: f.path, Err: err}
	}
	return nil
}
