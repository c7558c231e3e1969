package catalogue

import (
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_Invariants is a pgregory.net/rapid property-based test
// generating random sequences of Mode-B calls against a freshly seeded
// catalogue and checking spec.md §8's quantified invariants 1, 2, 5, and
// 6 after every step.
//
// rapid is declared in Loofy147-LibraNexus/go.mod but never exercised
// there; spec.md §8 phrases its testable properties as exactly the kind
// of "holds for arbitrary sequences of operations" statement rapid is
// built to check.
func TestProperty_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const isbn = 1
		initial := rapid.IntRange(0, 50).Draw(t, "initial")

		c := New()
		if err := c.AddBooks([]StockBook{
			{ISBN: isbn, Title: "T", Author: "A", Price: 1, NumCopies: initial},
		}); err != nil {
			t.Fatalf("seeding failed: %v", err)
		}

		expectedCopies := initial
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0: // add_copies
				n := rapid.IntRange(1, 10).Draw(t, "add_n")
				if err := c.AddCopies([]BookCopy{{ISBN: isbn, NumCopies: n}}); err != nil {
					t.Fatalf("AddCopies failed: %v", err)
				}
				expectedCopies += n

				// Invariant 2: observation right after add_copies(n) with
				// no intervening buy equals prior + n.
				got := mustGetOne(t, c, isbn)
				if got.NumCopies != expectedCopies {
					t.Fatalf("invariant 2 violated: want %d copies, got %d", expectedCopies, got.NumCopies)
				}
				// Invariant 5: add_copies resets sale misses to 0.
				if got.NumSaleMisses != 0 {
					t.Fatalf("invariant 5 violated: sale misses %d after add_copies", got.NumSaleMisses)
				}

			case 1: // buy: succeeds within stock, fails beyond it
				n := rapid.IntRange(1, 10).Draw(t, "buy_n")
				err := c.BuyBooks([]BookCopy{{ISBN: isbn, NumCopies: n}})
				if n <= expectedCopies {
					if err != nil {
						t.Fatalf("expected BuyBooks(%d) to succeed with %d in stock: %v", n, expectedCopies, err)
					}
					expectedCopies -= n
				} else if err == nil {
					t.Fatalf("expected BuyBooks(%d) to fail with only %d in stock", n, expectedCopies)
				}

			case 2: // rate, should never move copies
				r := rapid.IntRange(0, 5).Draw(t, "rating")
				if err := c.RateBooks([]BookRating{{ISBN: isbn, Rating: r}}); err != nil {
					t.Fatalf("RateBooks failed: %v", err)
				}
			}

			// Invariant 1: num_copies >= 0 at every observation point.
			got := mustGetOne(t, c, isbn)
			if got.NumCopies < 0 {
				t.Fatalf("invariant 1 violated: negative copies %d", got.NumCopies)
			}
			if got.NumCopies != expectedCopies {
				t.Fatalf("copy count drifted: want %d, got %d", expectedCopies, got.NumCopies)
			}

			// Invariant 6: GetBooks() and GetBooksByISBN(all) agree.
			all := c.GetBooks()
			byISBN, err := c.GetBooksByISBN([]int{isbn})
			if err != nil {
				t.Fatalf("GetBooksByISBN failed: %v", err)
			}
			if len(all) != 1 || all[0] != byISBN[0] {
				t.Fatalf("invariant 6 violated: GetBooks() = %v, GetBooksByISBN = %v", all, byISBN)
			}
		}
	})
}

func mustGetOne(t *rapid.T, c *Catalogue, isbn int) StockBook {
	t.Helper()
	got, err := c.GetBooksByISBN([]int{isbn})
	if err != nil {
		t.Fatalf("GetBooksByISBN failed: %v", err)
	}
	return got[0]
}
