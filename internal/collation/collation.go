// Package collation provides locale-aware string ordering and case folding
// for listing and searching the book collection. Byte comparison is wrong
// for Cyrillic titles, so everything routes through x/text.
package collation

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares and case-folds strings under the rules of one locale.
// Construct with New; the zero value is unusable.
type Collator struct {
	tag language.Tag

	// collate.Collator keeps internal buffers and is not safe for
	// concurrent use.
	mu  sync.Mutex
	col *collate.Collator
}

// New builds a Collator for a BCP-47 locale identifier such as "sr-Cyrl".
func New(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Collator{tag: tag, col: collate.New(tag)}, nil
}

// Compare orders a and b by the locale's collation rules rather than by
// code point. It returns -1, 0 or +1.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}

// Lower folds s to lower case using the locale's casing rules.
func (c *Collator) Lower(s string) string {
	return cases.Lower(c.tag).String(s)
}
