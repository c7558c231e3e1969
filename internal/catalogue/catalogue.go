// Package catalogue implements the Catalogue layer: the ISBN→record map,
// the catalogue-wide reader/writer lock, and every public operation of
// the two-level locking protocol spec.md describes.
//
// Grounded on ASHISH26940-heliosdb/internal/store.Store (a
// sync.RWMutex-guarded map with Get/Set/Delete) generalized from a flat
// key-value store to a map of per-record locks plus a catalogue-wide
// lock, per spec.md §4.3's Mode-A/Mode-B split.
package catalogue

import (
	"sync"

	"github.com/venclov/acs-ass2/internal/book"
)

// Catalogue owns the mapping from ISBN to Lockable Record and the single
// catalogue-wide reader/writer lock. The zero value is not usable; use
// New.
type Catalogue struct {
	mu    sync.RWMutex
	books map[int]*book.Lockable
}

// New returns an empty Catalogue.
func New() *Catalogue {
	return &Catalogue{books: make(map[int]*book.Lockable)}
}

// AddBooks is a Mode-A (catalogue-exclusive) operation: it validates
// every entry, and only if all validate does it insert any of them.
func (c *Catalogue) AddBooks(books []StockBook) error {
	if books == nil {
		return ErrNullInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, b := range books {
		if err := c.validateNewStockBook(b); err != nil {
			return err
		}
	}
	for _, b := range books {
		c.books[b.ISBN] = book.NewLockable(book.NewFromStock(
			b.ISBN, b.Title, b.Author, b.Price,
			b.NumCopies, b.NumSaleMisses, b.TotalRating, b.NumTimesRated, b.EditorPick,
		))
	}
	return nil
}

// RemoveBooks is a Mode-A operation: all-or-nothing removal of the given
// ISBNs.
func (c *Catalogue) RemoveBooks(isbns []int) error {
	if isbns == nil {
		return ErrNullInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, isbn := range isbns {
		if err := c.validateISBNPresentLocked(isbn); err != nil {
			return err
		}
	}
	for _, isbn := range isbns {
		delete(c.books, isbn)
	}
	return nil
}

// RemoveAllBooks is a Mode-A operation: it empties the catalogue.
func (c *Catalogue) RemoveAllBooks() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = make(map[int]*book.Lockable)
}

func isValidISBN(isbn int) bool { return isbn >= 1 }

func isValidCopyCount(n int) bool { return n >= 1 }

func isValidRating(r int) bool { return r >= 0 && r <= 5 }

// validateNewStockBook checks a single AddBooks entry. Must be called
// with the catalogue write lock held.
func (c *Catalogue) validateNewStockBook(b StockBook) error {
	if !isValidISBN(b.ISBN) {
		return newValidationError(ErrInvalidISBN, b.ISBN, "isbn %d is invalid", b.ISBN)
	}
	if b.Title == "" {
		return newValidationError(ErrInvalidBookFields, b.ISBN, "book %d has an empty title", b.ISBN)
	}
	if b.Author == "" {
		return newValidationError(ErrInvalidBookFields, b.ISBN, "book %d has an empty author", b.ISBN)
	}
	if b.NumCopies < 0 {
		return newValidationError(ErrInvalidBookFields, b.ISBN, "book %d has negative copies %d", b.ISBN, b.NumCopies)
	}
	if b.Price < 0.0 {
		return newValidationError(ErrInvalidBookFields, b.ISBN, "book %d has negative price %v", b.ISBN, b.Price)
	}
	if _, present := c.books[b.ISBN]; present {
		return newValidationError(ErrDuplicateISBN, b.ISBN, "isbn %d is already in the catalogue", b.ISBN)
	}
	return nil
}

// validateISBNPresentLocked checks that isbn is well-formed and present
// in the map. Callers must already hold either the read or write
// catalogue lock.
func (c *Catalogue) validateISBNPresentLocked(isbn int) error {
	if !isValidISBN(isbn) {
		return newValidationError(ErrInvalidISBN, isbn, "isbn %d is invalid", isbn)
	}
	if _, present := c.books[isbn]; !present {
		return newValidationError(ErrISBNNotPresent, isbn, "isbn %d is not in the catalogue", isbn)
	}
	return nil
}
