package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	_ "modernc.org/sqlite"
)

const createScoresTable = `
CREATE TABLE IF NOT EXISTS best_scores (
	tier       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT ''
)`

// SQLiteScoreStorage keeps scores in a single-file database, the local
// stand-in for a browser's key-value store.
type SQLiteScoreStorage struct {
	db *sql.DB
}

// OpenSQLiteScoreStorage opens (or creates) the database at path. Use
// ":memory:" for a throwaway store.
func OpenSQLiteScoreStorage(ctx context.Context, path string) (*SQLiteScoreStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases shared between calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createScoresTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create best_scores table: %w", err)
	}
	logging.Log.Infof("SCORES: using sqlite store at %s", path)
	return &SQLiteScoreStorage{db: db}, nil
}

func (s *SQLiteScoreStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteScoreStorage) Get(ctx context.Context, tier string) (*BestScore, error) {
	var item scoreItem
	var updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT tier, value, updated_at FROM best_scores WHERE tier = ?`, tier,
	).Scan(&item.Tier, &item.Value, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("SCORES: select tier %s failed: %v", tier, err)
		return nil, fmt.Errorf("get best score %s: %w", tier, err)
	}
	item.UpdatedAt = parseTime(updated)
	return decodeItem(item), nil
}

func (s *SQLiteScoreStorage) GetAll(ctx context.Context) ([]*BestScore, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tier, value, updated_at FROM best_scores ORDER BY tier`)
	if err != nil {
		logging.Log.Errorf("SCORES: select all failed: %v", err)
		return nil, fmt.Errorf("list best scores: %w", err)
	}
	defer rows.Close()

	var scores []*BestScore
	for rows.Next() {
		var item scoreItem
		var updated string
		if err := rows.Scan(&item.Tier, &item.Value, &updated); err != nil {
			return nil, fmt.Errorf("scan best score: %w", err)
		}
		item.UpdatedAt = parseTime(updated)
		if score := decodeItem(item); score != nil {
			scores = append(scores, score)
		}
	}
	return scores, rows.Err()
}

func (s *SQLiteScoreStorage) Put(ctx context.Context, score *BestScore) error {
	item, err := encodeItem(score)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO best_scores (tier, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(tier) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		item.Tier, item.Value, item.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		logging.Log.Errorf("SCORES: upsert tier %s failed: %v", score.Tier, err)
		return fmt.Errorf("put best score %s: %w", score.Tier, err)
	}
	return nil
}

// upsertIfLower replaces the stored value when it is not a positive decimal
// integer or is higher than the new one.
const upsertIfLower = `
INSERT INTO best_scores (tier, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(tier) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
WHERE trim(best_scores.value) = ''
   OR trim(best_scores.value) GLOB '*[^0-9]*'
   OR CAST(trim(best_scores.value) AS INTEGER) <= 0
   OR CAST(trim(best_scores.value) AS INTEGER) > CAST(excluded.value AS INTEGER)`

func (s *SQLiteScoreStorage) PutIfLower(ctx context.Context, score *BestScore) (bool, error) {
	item, err := encodeItem(score)
	if err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx, upsertIfLower,
		item.Tier, item.Value, item.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		logging.Log.Errorf("SCORES: conditional upsert tier %s failed: %v", score.Tier, err)
		return false, fmt.Errorf("put best score %s: %w", score.Tier, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("put best score %s: %w", score.Tier, err)
	}
	return n > 0, nil
}

func (s *SQLiteScoreStorage) Delete(ctx context.Context, tier string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM best_scores WHERE tier = ?`, tier); err != nil {
		logging.Log.Errorf("SCORES: delete tier %s failed: %v", tier, err)
		return fmt.Errorf("delete best score %s: %w", tier, err)
	}
	logging.Log.Infof("SCORES: deleted best score for tier %s", tier)
	return nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
