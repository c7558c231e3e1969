package catalogue

// PurchaseFront is the client-facing capability surface (spec.md §6).
// *Catalogue satisfies it directly; it is declared as a narrow interface
// so that callers depend on behavior, not on the concrete type —
// mirroring ASHISH26940-heliosdb/internal/server.DataStore's pattern of
// depending on an interface rather than *store.Store.
type PurchaseFront interface {
	BuyBooks(purchases []BookCopy) error
	GetBooksForClients(isbns []int) ([]Book, error)
	GetEditorPicks(k int) ([]Book, error)
	GetTopRatedBooks(k int) ([]Book, error)
	RateBooks(ratings []BookRating) error
}

// StockManager is the operator-facing capability surface (spec.md §6).
type StockManager interface {
	AddBooks(books []StockBook) error
	AddCopies(deltas []BookCopy) error
	UpdateEditorPicks(picks []BookEditorPick) error
	GetBooks() []StockBook
	GetBooksByISBN(isbns []int) ([]StockBook, error)
	GetBooksInDemand() ([]StockBook, error)
	RemoveBooks(isbns []int) error
	RemoveAllBooks()
}

var (
	_ PurchaseFront = (*Catalogue)(nil)
	_ StockManager  = (*Catalogue)(nil)
)
