// Package stress drives a concurrent workload of random Mode-A/Mode-B
// calls against a catalogue.Catalogue — the harness used to demonstrate
// spec.md §8's "no deadlock" property outside of the test suite, and the
// engine behind cmd/bookstore's demo run.
//
// Grounded on the fan-out/fan-in shape of
// AntonStoeckl-dynamic-streams-eventstore-go/example/simulation2's
// ActorScheduler/LoadController (many goroutines issuing randomized
// operations against a shared store), but built on
// golang.org/x/sync/errgroup instead of hand-rolled sync.WaitGroup plus
// error channels.
package stress

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/venclov/acs-ass2/internal/catalogue"
)

// Options configures one Run.
type Options struct {
	Workers      int
	OpsPerWorker int
	ISBNRange    int // operations touch ISBNs in [1, ISBNRange]
}

// Report summarizes one Run for the caller to log.
type Report struct {
	BatchID       string
	TotalOps      int
	OutOfStock    int
	Validation    int
	Unrecoverable int
}

// Run seeds nothing itself — callers pre-populate c — and fans out
// opts.Workers goroutines, each issuing opts.OpsPerWorker randomly chosen
// Catalogue calls against ISBNs in [1, opts.ISBNRange]. It returns once
// every worker has finished or ctx is cancelled.
func Run(ctx context.Context, c *catalogue.Catalogue, opts Options) (Report, error) {
	batchID := uuid.NewString()

	g, ctx := errgroup.WithContext(ctx)
	counts := make(chan outcome, opts.Workers*opts.OpsPerWorker)

	for w := 0; w < opts.Workers; w++ {
		seed := uint64(w) + 1
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
			for i := 0; i < opts.OpsPerWorker; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				counts <- oneOperation(c, rng, opts.ISBNRange)
			}
			return nil
		})
	}

	err := g.Wait()
	close(counts)

	report := Report{BatchID: batchID}
	for o := range counts {
		report.TotalOps++
		switch o {
		case outcomeOutOfStock:
			report.OutOfStock++
		case outcomeValidation:
			report.Validation++
		case outcomeOther:
			report.Unrecoverable++
		}
	}
	return report, err
}

type outcome int

const (
	outcomeOK outcome = iota
	outcomeOutOfStock
	outcomeValidation
	outcomeOther
)

func oneOperation(c *catalogue.Catalogue, rng *rand.Rand, isbnRange int) outcome {
	isbn := rng.IntN(isbnRange) + 1

	var err error
	switch rng.IntN(7) {
	case 0:
		err = c.AddCopies([]catalogue.BookCopy{{ISBN: isbn, NumCopies: 1 + rng.IntN(3)}})
	case 1:
		err = c.BuyBooks([]catalogue.BookCopy{{ISBN: isbn, NumCopies: 1 + rng.IntN(3)}})
	case 2:
		err = c.RateBooks([]catalogue.BookRating{{ISBN: isbn, Rating: rng.IntN(6)}})
	case 3:
		err = c.UpdateEditorPicks([]catalogue.BookEditorPick{{ISBN: isbn, EditorPick: rng.IntN(2) == 0}})
	case 4:
		c.GetBooks()
	case 5:
		_, err = c.GetBooksByISBN([]int{isbn})
	case 6:
		_, err = c.GetTopRatedBooks(3)
	}

	switch {
	case err == nil:
		return outcomeOK
	case isOutOfStock(err):
		return outcomeOutOfStock
	case isValidation(err):
		return outcomeValidation
	default:
		return outcomeOther
	}
}

func isOutOfStock(err error) bool {
	return errors.Is(err, catalogue.ErrOutOfStock)
}

func isValidation(err error) bool {
	_, ok := err.(*catalogue.ValidationError)
	return ok
}
