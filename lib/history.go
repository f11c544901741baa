package lib

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"time"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// HistoryStore records every evaluated line in the evaluations table.
type HistoryStore struct {
	db              execer
	runID           string
	resultPrecision int
	closer          func() error
}

const insertEvaluationSQL = `INSERT INTO evaluations
	(run_id, line, expression, postfix, result, result_text, error)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

func newHistoryStore(db execer, runID string, resultPrecision int) *HistoryStore {
	return &HistoryStore{db: db, runID: runID, resultPrecision: resultPrecision}
}

// OpenHistory connects to Postgres, brings the schema up to date and returns a
// store tagging rows with a fresh run id.
func OpenHistory(ctx context.Context, dsn string, resultPrecision int) (*HistoryStore, error) {
	db, err := OpenDB(ctx, dsn)
	if err != nil {
		return nil, err
	}

	migrations, err := HistoryMigrations()
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := RunMigrations(ctx, db, migrations); err != nil {
		db.Close()
		return nil, err
	}

	store := newHistoryStore(db, strconv.FormatInt(time.Now().UnixNano(), 36), resultPrecision)
	store.closer = db.Close
	return store, nil
}

func (h *HistoryStore) RunID() string {
	return h.runID
}

func (h *HistoryStore) Record(ctx context.Context, entry Entry) error {
	var (
		postfix    sql.NullString
		result     sql.NullFloat64
		resultText sql.NullString
		errText    sql.NullString
	)
	if entry.Err != nil {
		errText = sql.NullString{String: entry.Err.Error(), Valid: true}
	} else {
		postfix = sql.NullString{String: entry.Postfix, Valid: true}
		resultText = sql.NullString{String: FormatResult(entry.Value, h.resultPrecision), Valid: true}
		// float8 columns reject the driver's rendering of non-finite values
		if !math.IsInf(entry.Value, 0) && !math.IsNaN(entry.Value) {
			result = sql.NullFloat64{Float64: entry.Value, Valid: true}
		}
	}

	_, err := h.db.ExecContext(ctx, insertEvaluationSQL,
		h.runID, entry.Line, entry.Expression, postfix, result, resultText, errText)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}
	return nil
}

func (h *HistoryStore) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer()
}
