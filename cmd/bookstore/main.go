// Command bookstore builds a catalogue, optionally seeds it from a JSON
// file, and runs a concurrent stress workload against it, logging a
// summary. It is a thin demo wrapper around the catalogue core — request
// transport and CLI wiring are explicitly external to the core (spec.md
// §1) — adapted from ASHISH26940-heliosdb/cmd/heliosdb/main.go's
// flag-parse/config-load/run shape.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/venclov/acs-ass2/internal/catalogue"
	"github.com/venclov/acs-ass2/internal/config"
	"github.com/venclov/acs-ass2/internal/stress"
)

func main() {
	configFile := flag.String("config", "", "Path to a TOML config file (optional)")
	flag.Parse()

	cfg := config.New()
	if *configFile != "" {
		if err := cfg.Load(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	c := catalogue.New()
	if cfg.SeedPath != "" {
		if err := seedFromFile(c, cfg.SeedPath); err != nil {
			log.Fatalf("Failed to seed catalogue from %s: %v", cfg.SeedPath, err)
		}
	} else {
		seedDefault(c)
	}

	log.Printf("Catalogue seeded. Running %d workers x %d ops...", cfg.StressWorkers, cfg.StressOpsPerWorker)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := stress.Run(ctx, c, stress.Options{
		Workers:      cfg.StressWorkers,
		OpsPerWorker: cfg.StressOpsPerWorker,
		ISBNRange:    20,
	})
	if err != nil {
		log.Fatalf("Stress run failed: %v", err)
	}

	log.Printf("Batch %s complete: %d ops (%d out-of-stock, %d validation, %d other)",
		report.BatchID, report.TotalOps, report.OutOfStock, report.Validation, report.Unrecoverable)

	picks, err := c.GetEditorPicks(cfg.DefaultEditorPicks)
	if err != nil {
		log.Fatalf("GetEditorPicks failed: %v", err)
	}
	log.Printf("Editor picks (%d requested, %d returned): %v", cfg.DefaultEditorPicks, len(picks), picks)
}

// seedFromFile loads a JSON array of catalogue.StockBook from path and
// adds them all in one Mode-A call.
func seedFromFile(c *catalogue.Catalogue, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var books []catalogue.StockBook
	if err := json.Unmarshal(data, &books); err != nil {
		return err
	}
	return c.AddBooks(books)
}

func seedDefault(c *catalogue.Catalogue) {
	err := c.AddBooks([]catalogue.StockBook{
		{ISBN: 3044560, Title: "Effective Go", Author: "R. Pike", Price: 29.99, NumCopies: 10},
		{ISBN: 3044561, Title: "The Go Programming Language", Author: "A. Donovan", Price: 34.99, NumCopies: 10},
		{ISBN: 3044562, Title: "Concurrency in Go", Author: "K. Cox-Buday", Price: 24.99, NumCopies: 10},
	})
	if err != nil {
		log.Fatalf("Failed to seed default catalogue: %v", err)
	}
}
