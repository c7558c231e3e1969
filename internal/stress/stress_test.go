package stress

import (
	"context"
	"testing"
	"time"

	"github.com/venclov/acs-ass2/internal/catalogue"
)

func TestRun_TerminatesWithoutDeadlock(t *testing.T) {
	c := catalogue.New()
	var seed []catalogue.StockBook
	for isbn := 1; isbn <= 10; isbn++ {
		seed = append(seed, catalogue.StockBook{ISBN: isbn, Title: "T", Author: "A", Price: 1, NumCopies: 5})
	}
	if err := c.AddBooks(seed); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := Run(ctx, c, Options{Workers: 16, OpsPerWorker: 50, ISBNRange: 10})
	if err != nil {
		t.Fatalf("unexpected error from Run: %v", err)
	}
	if report.BatchID == "" {
		t.Error("expected a non-empty batch ID")
	}
	if report.TotalOps != 16*50 {
		t.Errorf("expected %d total ops, got %d", 16*50, report.TotalOps)
	}
}
