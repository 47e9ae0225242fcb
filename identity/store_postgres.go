package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRegistry implements Registry on a Postgres JSONB document
// table. Name-membership predicates map onto the jsonb key-exists
// operators, which treat a JSON string array as a key set, so the
// Mongo-style "field equals value means value is in the list" semantics
// carry over directly.
type PostgresRegistry struct {
	pool *pgxpool.Pool
}

// NewPostgresRegistry creates a registry backed by the given pool.
// Run Migrate before first use.
func NewPostgresRegistry(pool *pgxpool.Pool) *PostgresRegistry {
	return &PostgresRegistry{pool: pool}
}

// Close releases the underlying connection pool.
func (p *PostgresRegistry) Close() {
	p.pool.Close()
}

// where builds the SQL conditions for a filter. Args are numbered from 1.
func where(f Filter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "$N", "$"+strconv.Itoa(len(args))))
	}

	if f.ORCID != "" {
		add("doc->>'orcid' = $N", f.ORCID)
	}
	if f.EmployeeID != "" {
		add("doc->>'employeeId' = $N", f.EmployeeID)
	}
	if f.Given != "" {
		add("doc->'given' ? $N", f.Given)
	}
	if f.Family != "" {
		add("doc->'family' ? $N", f.Family)
	}
	if len(f.GivenIn) > 0 {
		add("doc->'given' ?| $N", f.GivenIn)
	}
	if len(f.FamilyIn) > 0 {
		add("doc->'family' ?| $N", f.FamilyIn)
	}

	if len(conds) == 0 {
		return "TRUE", nil
	}
	return strings.Join(conds, " AND "), args
}

// FindOne returns the first matching record, or nil.
func (p *PostgresRegistry) FindOne(ctx context.Context, f Filter) (*Record, error) {
	cond, args := where(f)
	query := "SELECT id, doc FROM identity WHERE " + cond + " ORDER BY id LIMIT 1"

	var id int64
	var doc []byte
	err := p.pool.QueryRow(ctx, query, args...).Scan(&id, &doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying identity registry: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("decoding identity document %d: %w", id, err)
	}
	rec.ID = strconv.FormatInt(id, 10)
	return &rec, nil
}

// Count returns the number of matching records.
func (p *PostgresRegistry) Count(ctx context.Context, f Filter) (int64, error) {
	cond, args := where(f)
	var n int64
	err := p.pool.QueryRow(ctx, "SELECT count(*) FROM identity WHERE "+cond, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting identity records: %w", err)
	}
	return n, nil
}

// Insert stores a new record and returns its generated ID.
func (p *PostgresRegistry) Insert(ctx context.Context, rec *Record) (string, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding identity document: %w", err)
	}
	var id int64
	err = p.pool.QueryRow(ctx,
		"INSERT INTO identity (doc) VALUES ($1) RETURNING id", doc).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting identity record: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

// Update merges the patch into all matching documents and returns the
// matched count.
func (p *PostgresRegistry) Update(ctx context.Context, f Filter, patch Patch) (int64, error) {
	if f.IsZero() {
		return 0, ErrEmptyFilter
	}
	fields := patch.fields()
	if len(fields) == 0 {
		return 0, nil
	}
	merge, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("encoding identity patch: %w", err)
	}

	cond, args := where(f)
	query := fmt.Sprintf(
		"UPDATE identity SET doc = doc || $%d, updated_at = now() WHERE %s",
		len(args)+1, cond)
	tag, err := p.pool.Exec(ctx, query, append(args, merge)...)
	if err != nil {
		return 0, fmt.Errorf("updating identity records: %w", err)
	}
	return tag.RowsAffected(), nil
}
