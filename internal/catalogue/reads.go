package catalogue

import "sort"

// GetBooks returns a StockBook snapshot of every record in the
// catalogue. Mode-B: catalogue read lock, then a per-record read lock on
// every record (Design Note 3 — this, not the catalogue lock alone, is
// what precludes a half-updated snapshot under the Mode-B discipline).
func (c *Catalogue) GetBooks() []StockBook {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := allRecords(c.books, false)
	ls.lock()
	defer ls.unlock()

	out := make([]StockBook, len(ls.records))
	for i, r := range ls.records {
		out[i] = toStockBook(r.Unsafe())
	}
	return out
}

// GetBooksByISBN returns StockBook snapshots for the requested ISBNs, in
// request order. Fails if any ISBN is absent or invalid.
func (c *Catalogue) GetBooksByISBN(isbns []int) ([]StockBook, error) {
	if isbns == nil {
		return nil, ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, isbn := range isbns {
		if err := c.validateISBNPresentLocked(isbn); err != nil {
			return nil, err
		}
	}

	ls := newLockSet(c.books, isbns, false)
	ls.lock()
	defer ls.unlock()

	out := make([]StockBook, len(isbns))
	for i, isbn := range isbns {
		out[i] = toStockBook(c.books[isbn].Unsafe())
	}
	return out, nil
}

// GetBooksForClients returns the client-visible Book projection for the
// requested ISBNs, in request order.
func (c *Catalogue) GetBooksForClients(isbns []int) ([]Book, error) {
	if isbns == nil {
		return nil, ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, isbn := range isbns {
		if err := c.validateISBNPresentLocked(isbn); err != nil {
			return nil, err
		}
	}

	ls := newLockSet(c.books, isbns, false)
	ls.lock()
	defer ls.unlock()

	out := make([]Book, len(isbns))
	for i, isbn := range isbns {
		out[i] = toClientBook(c.books[isbn].Unsafe())
	}
	return out, nil
}

// GetEditorPicks returns up to k editor-picked books. If the filtered set
// has k or fewer members, all of them are returned; otherwise k distinct
// ones are sampled uniformly at random without replacement (spec.md
// §4.4). Fails if k < 0.
func (c *Catalogue) GetEditorPicks(k int) ([]Book, error) {
	if k < 0 {
		return nil, newValidationError(ErrInvalidArgument, 0, "numBooks = %d, but it must be non-negative", k)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := allRecords(c.books, false)
	ls.lock()
	defer ls.unlock()

	var picks []Book
	for _, r := range ls.records {
		rec := r.Unsafe()
		if rec.EditorPick() {
			picks = append(picks, toClientBook(rec))
		}
	}

	indices := sampleIndices(len(picks), k)
	out := make([]Book, len(indices))
	for i, idx := range indices {
		out[i] = picks[idx]
	}
	return out, nil
}

// GetTopRatedBooks returns the k records with the greatest average
// rating, unrated records excluded, ties broken by ascending ISBN.
func (c *Catalogue) GetTopRatedBooks(k int) ([]Book, error) {
	if k < 0 {
		return nil, newValidationError(ErrInvalidArgument, 0, "numBooks = %d, but it must be non-negative", k)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := allRecords(c.books, false)
	ls.lock()
	defer ls.unlock()

	type rated struct {
		book    Book
		isbn    int
		average float64
	}
	var candidates []rated
	for _, r := range ls.records {
		rec := r.Unsafe()
		if rec.NumTimesRated() == 0 {
			continue
		}
		candidates = append(candidates, rated{
			book:    toClientBook(rec),
			isbn:    rec.ISBN(),
			average: rec.AverageRating(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].average != candidates[j].average {
			return candidates[i].average > candidates[j].average
		}
		return candidates[i].isbn < candidates[j].isbn
	})

	if k < len(candidates) {
		candidates = candidates[:k]
	}
	out := make([]Book, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.book
	}
	return out, nil
}

// GetBooksInDemand returns StockBook snapshots of every record with at
// least one sale miss. It returns an error for interface symmetry with
// the stock-management capability surface (spec.md §6); there is no
// input to validate, so it is always nil.
func (c *Catalogue) GetBooksInDemand() ([]StockBook, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ls := allRecords(c.books, false)
	ls.lock()
	defer ls.unlock()

	var out []StockBook
	for _, r := range ls.records {
		rec := r.Unsafe()
		if rec.NumSaleMisses() > 0 {
			out = append(out, toStockBook(rec))
		}
	}
	return out, nil
}
