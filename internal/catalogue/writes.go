package catalogue

// AddCopies validates every delta, then acquires a per-record write lock
// on each touched record and applies them all together (Mode-B,
// catalogue read lock + per-record write locks).
func (c *Catalogue) AddCopies(deltas []BookCopy) error {
	if deltas == nil {
		return ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	isbns := make([]int, len(deltas))
	for i, d := range deltas {
		if err := c.validateBookCopy(d); err != nil {
			return err
		}
		isbns[i] = d.ISBN
	}

	ls := newLockSet(c.books, isbns, true)
	ls.lock()
	defer ls.unlock()

	for _, d := range deltas {
		c.books[d.ISBN].Unsafe().AddCopies(d.NumCopies)
	}
	return nil
}

// BuyBooks is observably atomic across the whole input set: either every
// requested purchase succeeds, or the call fails and the only mutation is
// the per-ISBN sale-miss bookkeeping for records that lacked stock (§4.3).
func (c *Catalogue) BuyBooks(purchases []BookCopy) error {
	if purchases == nil {
		return ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	isbns := make([]int, len(purchases))
	for i, p := range purchases {
		if err := c.validateBookCopy(p); err != nil {
			return err
		}
		isbns[i] = p.ISBN
	}

	ls := newLockSet(c.books, isbns, true)
	ls.lock()
	defer ls.unlock()

	// Entries naming the same ISBN are summed, so the check covers the
	// total requested for each record.
	requested := make(map[int]int, len(purchases))
	for _, p := range purchases {
		requested[p.ISBN] += p.NumCopies
	}

	shortfalls := make(map[int]int)
	for isbn, n := range requested {
		rec := c.books[isbn].Unsafe()
		if !rec.CopiesAvailable(n) {
			shortfalls[isbn] = n - rec.NumCopies()
		}
	}

	if len(shortfalls) > 0 {
		for isbn, shortfall := range shortfalls {
			c.books[isbn].Unsafe().AddSaleMiss(shortfall)
		}
		return ErrOutOfStock
	}

	for _, p := range purchases {
		c.books[p.ISBN].Unsafe().Buy(p.NumCopies)
	}
	return nil
}

// RateBooks validates every rating, then applies them all under
// per-record write locks.
func (c *Catalogue) RateBooks(ratings []BookRating) error {
	if ratings == nil {
		return ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	isbns := make([]int, len(ratings))
	for i, r := range ratings {
		if err := c.validateBookRating(r); err != nil {
			return err
		}
		isbns[i] = r.ISBN
	}

	ls := newLockSet(c.books, isbns, true)
	ls.lock()
	defer ls.unlock()

	for _, r := range ratings {
		c.books[r.ISBN].Unsafe().AddRating(r.Rating)
	}
	return nil
}

// UpdateEditorPicks validates every ISBN, then applies the flags under
// per-record write locks.
func (c *Catalogue) UpdateEditorPicks(picks []BookEditorPick) error {
	if picks == nil {
		return ErrNullInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	isbns := make([]int, len(picks))
	for i, p := range picks {
		if err := c.validateISBNPresentLocked(p.ISBN); err != nil {
			return err
		}
		isbns[i] = p.ISBN
	}

	ls := newLockSet(c.books, isbns, true)
	ls.lock()
	defer ls.unlock()

	for _, p := range picks {
		c.books[p.ISBN].Unsafe().SetEditorPick(p.EditorPick)
	}
	return nil
}

func (c *Catalogue) validateBookCopy(d BookCopy) error {
	if err := c.validateISBNPresentLocked(d.ISBN); err != nil {
		return err
	}
	if !isValidCopyCount(d.NumCopies) {
		return newValidationError(ErrInvalidCopyCount, d.ISBN, "num copies %d is invalid for isbn %d", d.NumCopies, d.ISBN)
	}
	return nil
}

func (c *Catalogue) validateBookRating(r BookRating) error {
	if err := c.validateISBNPresentLocked(r.ISBN); err != nil {
		return err
	}
	if !isValidRating(r.Rating) {
		return newValidationError(ErrInvalidRating, r.ISBN, "rating %d is invalid for isbn %d", r.Rating, r.ISBN)
	}
	return nil
}
