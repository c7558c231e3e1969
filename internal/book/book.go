// Package book implements the Record layer: a single catalogue entry and
// its legal mutations. A Book performs no locking of its own — it is only
// ever entered by a caller already holding the appropriate lock on the
// wrapping Lockable (see lockable.go).
package book

// UnratedAverage is the sentinel average rating for a book with no ratings.
const UnratedAverage = -1.0

// Book holds one catalogue entry's fields. The four identifying fields are
// immutable after construction; the rest are mutated only through the
// methods below, each of which documents its precondition. Callers (the
// catalogue) are responsible for validating preconditions before calling.
// Buy also checks its own precondition and reports failure; the other
// mutators do not check theirs and trust their caller.
type Book struct {
	isbn   int
	title  string
	author string
	price  float64

	numCopies     int
	numSaleMisses int
	totalRating   int
	numTimesRated int
	editorPick    bool
}

// New constructs a Book with zeroed mutable counters, mirroring
// BookStoreBook's constructor from a fresh StockBook.
func New(isbn int, title, author string, price float64, numCopies int) *Book {
	return &Book{
		isbn:   isbn,
		title:  title,
		author: author,
		price:  price,

		numCopies: numCopies,
	}
}

// NewFromStock constructs a Book from a full set of stock attributes,
// used when restoring/seeding a catalogue with pre-existing counters.
func NewFromStock(isbn int, title, author string, price float64, numCopies, numSaleMisses, totalRating, numTimesRated int, editorPick bool) *Book {
	return &Book{
		isbn:   isbn,
		title:  title,
		author: author,
		price:  price,

		numCopies:     numCopies,
		numSaleMisses: numSaleMisses,
		totalRating:   totalRating,
		numTimesRated: numTimesRated,
		editorPick:    editorPick,
	}
}

func (b *Book) ISBN() int        { return b.isbn }
func (b *Book) Title() string    { return b.title }
func (b *Book) Author() string   { return b.author }
func (b *Book) Price() float64   { return b.price }
func (b *Book) NumCopies() int   { return b.numCopies }
func (b *Book) NumSaleMisses() int { return b.numSaleMisses }
func (b *Book) TotalRating() int { return b.totalRating }
func (b *Book) NumTimesRated() int { return b.numTimesRated }
func (b *Book) EditorPick() bool { return b.editorPick }

// AverageRating returns totalRating/numTimesRated, or UnratedAverage when
// the book has never been rated.
func (b *Book) AverageRating() float64 {
	if b.numTimesRated == 0 {
		return UnratedAverage
	}
	return float64(b.totalRating) / float64(b.numTimesRated)
}

// CopiesAvailable reports whether at least n copies are in stock.
func (b *Book) CopiesAvailable(n int) bool {
	return b.numCopies >= n
}

// Buy removes n copies. Precondition: n >= 1 and CopiesAvailable(n). On
// failure it has no effect and returns false.
func (b *Book) Buy(n int) bool {
	if n < 1 || !b.CopiesAvailable(n) {
		return false
	}
	b.numCopies -= n
	return true
}

// AddCopies adds n copies and resets the sale-miss counter — a restock is
// evidence the shortage was addressed. Precondition: n >= 1.
func (b *Book) AddCopies(n int) {
	b.numCopies += n
	b.numSaleMisses = 0
}

// AddSaleMiss records a shortfall of n copies. Precondition: n >= 1.
func (b *Book) AddSaleMiss(n int) {
	b.numSaleMisses += n
}

// AddRating folds a single rating into the running total. Precondition:
// 0 <= r <= 5.
func (b *Book) AddRating(r int) {
	b.totalRating += r
	b.numTimesRated++
}

// SetEditorPick unconditionally assigns the editorial flag.
func (b *Book) SetEditorPick(pick bool) {
	b.editorPick = pick
}
