package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dmarren/budget-tracker/internal/ingest"
	"github.com/dmarren/budget-tracker/internal/logger"
	"github.com/dmarren/budget-tracker/internal/store"
)

func main() {
	// Optional .env for LOG_LEVEL; missing file is fine
	_ = godotenv.Load()

	log := logger.WithLevel(logger.New(), os.Getenv("LOG_LEVEL"))

	file := flag.String("file", "", "statement file to import (.csv or .pdf)")
	rulesPath := flag.String("rules", "", "YAML file with category classifier rules (default: built-in rules)")
	maxErrors := flag.Int("max-errors", 10, "maximum number of error lines to print")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("Error: -file is required")
	}

	var rules []ingest.CategoryRule
	if *rulesPath != "" {
		loaded, err := ingest.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading category rules")
		}
		rules = loaded
	}

	ctx := logger.WithContext(context.Background(), log)
	in := ingest.New(store.NewMemory(), rules)

	var res *ingest.ImportResult
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".csv":
		res = in.ImportCSV(ctx, *file)
	case ".pdf":
		res = in.ImportPDF(ctx, *file)
	default:
		log.Fatal().Str("file", *file).Msg("unsupported file type, expected .csv or .pdf")
	}

	fmt.Printf("Imported %d, failed %d\n", res.Imported, res.Failed)
	for i, msg := range res.ErrorStrings() {
		if i == *maxErrors {
			fmt.Printf("  ... and %d more errors\n", len(res.Errors)-i)
			break
		}
		fmt.Println("  error:", msg)
	}
	for _, w := range res.Warnings {
		fmt.Println("  warning:", w.String())
	}

	if res.Failed > 0 || (res.Imported == 0 && len(res.Errors) > 0) {
		os.Exit(1)
	}
}
