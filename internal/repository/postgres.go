package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sathorn/internal/model"
)

const createAIQueriesTable = `
	CREATE TABLE IF NOT EXISTS ai_queries (
		id           SERIAL PRIMARY KEY,
		query        TEXT NOT NULL,
		response     TEXT NOT NULL,
		property_ids TEXT,
		created_at   TIMESTAMP NOT NULL DEFAULT NOW()
	)
`

// PostgresQueryLog persists the query log in the ai_queries table
type PostgresQueryLog struct {
	db *sqlx.DB
}

// NewPostgresQueryLog connects, tunes the pool and makes sure ai_queries exists
func NewPostgresQueryLog(ctx context.Context, dsn string, maxConn, maxIdleConn int) (*PostgresQueryLog, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if _, err := db.ExecContext(ctx, createAIQueriesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ai_queries table: %w", err)
	}

	return &PostgresQueryLog{db: db}, nil
}

// Close closes the database connection
func (r *PostgresQueryLog) Close() error {
	return r.db.Close()
}

// Append inserts q and returns it with the database-assigned id and timestamp
func (r *PostgresQueryLog) Append(ctx context.Context, q model.AIQuery) (model.AIQuery, error) {
	query := `
		INSERT INTO ai_queries (query, response, property_ids)
		VALUES ($1, $2, $3)
		RETURNING id, query, response, COALESCE(property_ids, '') AS property_ids, created_at
	`

	var stored model.AIQuery
	if err := r.db.GetContext(ctx, &stored, query, q.Query, q.Response, q.PropertyIDs); err != nil {
		return model.AIQuery{}, fmt.Errorf("failed to log ai query: %w", err)
	}
	return stored, nil
}

// Recent returns up to limit records, newest first
func (r *PostgresQueryLog) Recent(ctx context.Context, limit int) ([]model.AIQuery, error) {
	if limit <= 0 {
		return []model.AIQuery{}, nil
	}

	query := `
		SELECT id, query, response, COALESCE(property_ids, '') AS property_ids, created_at
		FROM ai_queries
		ORDER BY id DESC
		LIMIT $1
	`

	records := []model.AIQuery{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list ai queries: %w", err)
	}
	return records, nil
}
