package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/session"
)

var historyColumns = []string{
	"id", "mode", "pre_score", "post_score", "delta",
	"duration_ms", "cycles_completed", "notes", "timestamp_ns",
}

// HistoryRepo persists finished sessions in the mindfool_history table.
// Rows are ordered by insertion sequence, newest first.
type HistoryRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// AddSession appends rec to the history.
func (r *HistoryRepo) AddSession(ctx context.Context, rec session.Record) error {
	exists, err := r.exists(ctx, rec.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("add session %s: %w", rec.ID, ErrDuplicateSession)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	query, args := builder().Insert(historyTable).
		Columns(append([]string{"sequence"}, historyColumns...)...).
		Values(
			seq,
			rec.ID,
			string(rec.Mode),
			rec.PreScore,
			rec.PostScore,
			rec.Delta,
			rec.Duration.Milliseconds(),
			rec.CyclesCompleted,
			rec.Notes,
			rec.Timestamp.UnixNano(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add session %s: %w", rec.ID, err)
	}
	return nil
}

// Sessions returns every stored record, newest first.
func (r *HistoryRepo) Sessions(ctx context.Context) ([]session.Record, error) {
	return r.Query(ctx, QueryOpts{})
}

// LastSession returns the most recently added record, or nil if none exist.
func (r *HistoryRepo) LastSession(ctx context.Context) (*session.Record, error) {
	recs, err := r.Query(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// ClearHistory removes every stored record.
func (r *HistoryRepo) ClearHistory(ctx context.Context) error {
	query, args := builder().Delete(historyTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Query returns records matching opts, newest first.
func (r *HistoryRepo) Query(ctx context.Context, opts QueryOpts) ([]session.Record, error) {
	b := builder()
	sel := b.Select(historyColumns...).From(b.Table(historyTable))

	var preds []*entsql.Predicate
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp_ns", opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp_ns", opts.To.UnixNano()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []session.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Count returns the number of stored records.
func (r *HistoryRepo) Count(ctx context.Context) (int, error) {
	b := builder()
	query, args := b.Select(entsql.Count("*")).From(b.Table(historyTable)).Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func (r *HistoryRepo) exists(ctx context.Context, id string) (bool, error) {
	b := builder()
	query, args := b.Select(entsql.Count("*")).
		From(b.Table(historyTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("lookup session %s: %w", id, err)
	}
	return n > 0, nil
}

func scanRecord(rows *sql.Rows) (session.Record, error) {
	var (
		rec        session.Record
		mode       string
		durationMs int64
		tsNanos    int64
	)
	err := rows.Scan(
		&rec.ID,
		&mode,
		&rec.PreScore,
		&rec.PostScore,
		&rec.Delta,
		&durationMs,
		&rec.CyclesCompleted,
		&rec.Notes,
		&tsNanos,
	)
	if err != nil {
		return session.Record{}, fmt.Errorf("scan session: %w", err)
	}
	rec.Mode = practice.Mode(mode)
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	rec.Timestamp = time.Unix(0, tsNanos)
	return rec, nil
}
