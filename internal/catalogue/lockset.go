package catalogue

import (
	"sort"

	"github.com/venclov/acs-ass2/internal/book"
)

// lockSet acquires per-record locks for a group of ISBNs in ascending
// order and releases them in descending order, implementing spec.md
// §4.3's lock-ordering discipline: "Any operation that must hold more
// than one per-record lock must acquire them in that order, and must
// release them in the reverse order." Every Mode-B operation takes the
// catalogue-level read lock before constructing a lockSet, so no cycle
// can form between the two levels (verified by construction: lockSet
// itself never touches c.mu).
type lockSet struct {
	records []*book.Lockable
	write   bool
}

// newLockSet resolves isbns (deduplicated) against books, in ascending
// ISBN order, without acquiring anything yet. Callers must already hold
// the catalogue-level read lock.
func newLockSet(books map[int]*book.Lockable, isbns []int, write bool) *lockSet {
	seen := make(map[int]bool, len(isbns))
	ordered := make([]int, 0, len(isbns))
	for _, isbn := range isbns {
		if seen[isbn] {
			continue
		}
		seen[isbn] = true
		ordered = append(ordered, isbn)
	}
	sort.Ints(ordered)

	records := make([]*book.Lockable, len(ordered))
	for i, isbn := range ordered {
		records[i] = books[isbn]
	}
	return &lockSet{records: records, write: write}
}

// allRecords builds a lockSet over every record currently in the map, in
// ascending ISBN order. Callers must already hold the catalogue-level
// read lock.
func allRecords(books map[int]*book.Lockable, write bool) *lockSet {
	isbns := make([]int, 0, len(books))
	for isbn := range books {
		isbns = append(isbns, isbn)
	}
	return newLockSet(books, isbns, write)
}

func (ls *lockSet) lock() {
	for _, r := range ls.records {
		if ls.write {
			r.LockWrite()
		} else {
			r.LockRead()
		}
	}
}

// unlock releases in reverse acquisition order.
func (ls *lockSet) unlock() {
	for i := len(ls.records) - 1; i >= 0; i-- {
		if ls.write {
			ls.records[i].UnlockWrite()
		} else {
			ls.records[i].UnlockRead()
		}
	}
}
