package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
)

const entityGeoSchema = `
CREATE SCHEMA IF NOT EXISTS stage;

CREATE TABLE IF NOT EXISTS stage.entity_geo (
	id BIGSERIAL PRIMARY KEY,
	run_id UUID NOT NULL,
	source_file TEXT NOT NULL,
	line_number INTEGER NOT NULL,
	token TEXT,
	entity TEXT,
	entity_offset TEXT,
	entity_url TEXT,
	confidence TEXT,
	wikidata_id TEXT,
	coordinates TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS entity_geo_run_idx ON stage.entity_geo (run_id, source_file);
`

func initDatabase(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	// Single-threaded writer; a couple of connections is plenty
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.ExecContext(ctx, entityGeoSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema setup failed: %w", err)
	}

	return db, nil
}

// pgRowSink collects a file's rows and copies them into stage.entity_geo in one transaction
type pgRowSink struct {
	db         *sql.DB
	runID      string
	sourceFile string
	rows       []ResolvedRow
}

func newPGRowSink(db *sql.DB, runID, sourceFile string) *pgRowSink {
	return &pgRowSink{db: db, runID: runID, sourceFile: sourceFile}
}

func (s *pgRowSink) WriteRow(row ResolvedRow) error {
	s.rows = append(s.rows, row)
	return nil
}

// Commit bulk inserts everything collected so far
func (s *pgRowSink) Commit(ctx context.Context) error {
	if len(s.rows) == 0 {
		return nil
	}
	if s.db == nil {
		return fmt.Errorf("database not configured")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema("stage", "entity_geo",
		"run_id", "source_file", "line_number", "token", "entity", "entity_offset",
		"entity_url", "confidence", "wikidata_id", "coordinates",
	))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range s.rows {
		_, err = stmt.ExecContext(ctx,
			s.runID,
			s.sourceFile,
			row.Line,
			row.Token,
			row.Entity,
			row.Offset,
			row.EntityURL,
			row.Confidence,
			row.WikidataID,
			row.Coordinates,
		)
		if err != nil {
			return fmt.Errorf("failed to copy line %d: %w", row.Line, err)
		}
	}

	// Execute the bulk insert
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to execute bulk insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Stored %d rows for %s in stage.entity_geo", len(s.rows), s.sourceFile)
	s.rows = nil
	return nil
}
