// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

// Command seed loads sample categories and books into an empty catalog.
//
// It is run by hand against development databases after the migrations have
// been applied. A catalog that already holds books is left untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/book"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/database/schema"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/pointer"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/slug"
)

type seedConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
}

type sampleBook struct {
	title     string
	author    string
	condition book.Condition
	year      int
	category  string
	rating    float64
	price     float64
	available bool
}

var sampleCategories = []string{
	"Mathematics", "Computer Science", "History", "Literature", "Physics",
}

var sampleBooks = []sampleBook{
	{"Calculus: Early Transcendentals", "James Stewart", book.ConditionUsed, 2015, "Mathematics", 4.6, 3500, true},
	{"Linear Algebra Done Right", "Sheldon Axler", book.ConditionNew, 2015, "Mathematics", 4.7, 4200, true},
	{"Introduction to Algorithms", "Cormen, Leiserson, Rivest, Stein", book.ConditionFair, 2009, "Computer Science", 4.8, 5200, true},
	{"The Go Programming Language", "Donovan, Kernighan", book.ConditionNew, 2015, "Computer Science", 4.7, 4800, true},
	{"Structure and Interpretation of Computer Programs", "Abelson, Sussman", book.ConditionPoor, 1996, "Computer Science", 4.5, 1200, false},
	{"A People's History of the United States", "Howard Zinn", book.ConditionUsed, 2003, "History", 4.2, 1800, true},
	{"SPQR", "Mary Beard", book.ConditionNew, 2015, "History", 4.1, 2500, true},
	{"The Great Gatsby", "F. Scott Fitzgerald", book.ConditionFair, 1925, "Literature", 4.4, 900, true},
	{"Madol Doova", "Martin Wickramasinghe", book.ConditionUsed, 1947, "Literature", 4.9, 650, true},
	{"University Physics", "Young, Freedman", book.ConditionUsed, 2011, "Physics", 4.3, 3900, false},
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "pageturn-seed"))

	if err := run(context.Background(), log); err != nil {
		log.Error("seed_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	_ = godotenv.Load()

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var existing int
		if err := tx.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", schema.Book.Table)).Scan(&existing); err != nil {
			return fmt.Errorf("count books: %w", err)
		}
		if existing > 0 {
			log.Info("seed_skipped", slog.Int("existing_books", existing))
			return nil
		}

		categoryIDs, err := insertCategories(ctx, tx)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(sampleBooks))
		for _, b := range sampleBooks {
			rows = append(rows, []any{
				b.title, b.author, string(b.condition), b.year, nil,
				nil, b.available, categoryIDs[b.category], b.rating,
				b.price, nil, book.DefaultLanguage, nil,
			})
		}

		copied, err := tx.CopyFrom(ctx, pgx.Identifier{schema.Book.Table}, schema.Book.Columns(), pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("copy books: %w", err)
		}

		log.Info("seed_completed",
			slog.Int("categories", len(categoryIDs)),
			slog.Int64("books", copied),
		)
		return nil
	})
}

func insertCategories(ctx context.Context, tx pgx.Tx) (map[string]int64, error) {
	insert := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES ($1, $2, $3)
		ON CONFLICT (%[2]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s
		RETURNING %[5]s`,
		schema.Category.Table, schema.Category.Name, schema.Category.Slug,
		schema.Category.Description, schema.Category.ID)

	ids := make(map[string]int64, len(sampleCategories))
	for _, name := range sampleCategories {
		var id int64
		description := pointer.NonBlank(name + " textbooks and reference works")
		if err := tx.QueryRow(ctx, insert, name, slug.From(name), description).Scan(&id); err != nil {
			return nil, fmt.Errorf("insert category %q: %w", name, err)
		}
		ids[name] = id
	}
	return ids, nil
}
