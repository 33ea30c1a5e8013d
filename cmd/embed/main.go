package main

import (
	"context"
	"flag"
	"log"

	"bookstore-be/internal/config"
	"bookstore-be/internal/repository/implementation"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/service"
	"bookstore-be/pkg/database"
	"bookstore-be/pkg/embedding"

	"github.com/fatih/color"
)

// Backfills embeddings for catalog rows. By default only books without a
// vector are processed; -force recomputes everything.
func main() {
	force := flag.Bool("force", false, "regenerate embeddings even if they already exist")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	provider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	bookRepo := implementation.NewBookRepository(db)
	ctx := context.Background()

	var specs []specification.Specification
	if !*force {
		specs = append(specs, specification.MissingEmbedding{})
	}

	books, err := bookRepo.FindAll(ctx, specs...)
	if err != nil {
		log.Fatalf("Failed to load books: %v", err)
	}

	if *force {
		color.Yellow("Regenerating embeddings for all %d books...", len(books))
	} else {
		color.Cyan("Processing %d books without embeddings...", len(books))
	}

	success := 0
	failed := 0
	for i, book := range books {
		vector, err := provider.Generate(ctx, service.EmbedDocument(book))
		if err != nil {
			color.Red("[%d/%d] FAILED %q: %v", i+1, len(books), book.Title, err)
			failed++
			continue
		}

		if err := bookRepo.UpdateEmbedding(ctx, book.Id, vector); err != nil {
			color.Red("[%d/%d] FAILED to store %q: %v", i+1, len(books), book.Title, err)
			failed++
			continue
		}

		color.Green("[%d/%d] Embedded %q", i+1, len(books), book.Title)
		success++
	}

	color.Cyan("Done. Embedded: %d, Failed: %d", success, failed)
	if failed > 0 {
		color.Yellow("Re-run the command to retry failed books.")
	}
}
