package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
)

// psql builds all repository queries with PostgreSQL ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RowScanner is the subset of *sql.Row / *sql.Rows needed to scan one record.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapping describes how an entity type maps onto its database table.
// One implementation exists per entity; the generic repository is
// instantiated with it instead of inspecting types at runtime.
//
// T is the stored entity, C the creation payload, U the partial-update patch.
type Mapping[T, C, U any] interface {
	// Table returns the table name.
	Table() string

	// Columns returns all persisted columns, in the order ScanRow reads them.
	Columns() []string

	// ScanRow reads one full row into an entity value.
	ScanRow(row RowScanner) (T, error)

	// InsertMap returns column→value pairs for persisting a creation payload.
	InsertMap(in C) map[string]any

	// UpdateMap returns column→value pairs for the fields present in patch.
	// Absent (nil) patch fields must not appear in the result.
	UpdateMap(patch U) map[string]any

	// ID returns the primary key of a stored entity.
	ID(entity T) int64
}

// repository is the generic CRUD implementation shared by all entities.
// Every operation is a single synchronous round trip on the injected
// connection pool; no caching, no batching, no cross-call transactions.
type repository[T, C, U any] struct {
	db      *DB
	mapping Mapping[T, C, U]
	logger  *logger.Logger
}

func newRepository[T, C, U any](db *DB, mapping Mapping[T, C, U], logger *logger.Logger) *repository[T, C, U] {
	return &repository[T, C, U]{
		db:      db,
		mapping: mapping,
		logger:  logger,
	}
}

// Get performs a point lookup by primary key.
// Absence is reported via the bool result, not as an error.
func (r *repository[T, C, U]) Get(ctx context.Context, id int64) (T, bool, error) {
	return r.getWhere(ctx, sq.Eq{"id": id})
}

// getWhere looks up a single record matching pred.
// Shared by Get and entity-specific lookups (e.g. user by email).
func (r *repository[T, C, U]) getWhere(ctx context.Context, pred any) (T, bool, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := psql.
		Select(r.mapping.Columns()...).
		From(r.mapping.Table()).
		Where(pred).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error building select query")
		return zero, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := r.mapping.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error scanning selected row")
		return zero, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, true, nil
}

// GetMulti returns a page of records. Ordering is left to the underlying
// storage; callers must not rely on it.
func (r *repository[T, C, U]) GetMulti(ctx context.Context, offset, limit int) ([]T, error) {
	return r.getMultiWhere(ctx, nil, offset, limit)
}

// getMultiWhere returns a page of records matching pred (pred may be nil).
func (r *repository[T, C, U]) getMultiWhere(ctx context.Context, pred any, offset, limit int) ([]T, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(r.mapping.Columns()...).
		From(r.mapping.Table()).
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]T, 0, limit)
	for rows.Next() {
		entity, err := r.mapping.ScanRow(rows)
		if err != nil {
			log.Err(err).Str("table", r.mapping.Table()).Msg("error scanning selected rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entities, nil
}

// Create persists a new record and returns the stored row, round-tripped
// through a RETURNING clause so that server-assigned fields (id) are
// captured.
//
// Error handling:
//   - unique_violation (23505) → ErrDuplicateRecord
//   - foreign_key_violation (23503) → ErrOwnerNotFound
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *repository[T, C, U]) Create(ctx context.Context, in C) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := psql.
		Insert(r.mapping.Table()).
		SetMap(r.mapping.InsertMap(in)).
		Suffix(returningClause(r.mapping.Columns())).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error building insert query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := r.mapping.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error inserting row")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return zero, ErrDuplicateRecord
		case pgerrcode.ForeignKeyViolation:
			return zero, ErrOwnerNotFound
		default:
			return zero, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return entity, nil
}

// Update applies only the fields present in patch to the existing record and
// returns the refreshed row. An empty patch is a no-op that returns existing
// unchanged without touching the database.
func (r *repository[T, C, U]) Update(ctx context.Context, existing T, patch U) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	setMap := r.mapping.UpdateMap(patch)
	if len(setMap) == 0 {
		return existing, nil
	}

	query, args, err := psql.
		Update(r.mapping.Table()).
		SetMap(setMap).
		Where(sq.Eq{"id": r.mapping.ID(existing)}).
		Suffix(returningClause(r.mapping.Columns())).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error building update query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := r.mapping.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrRecordVanished
	}
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error updating row")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return zero, ErrDuplicateRecord
		case pgerrcode.ForeignKeyViolation:
			return zero, ErrOwnerNotFound
		default:
			return zero, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return entity, nil
}

// Remove deletes the record by primary key and returns the pre-deletion
// snapshot the caller passed in.
func (r *repository[T, C, U]) Remove(ctx context.Context, existing T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	query, args, err := psql.
		Delete(r.mapping.Table()).
		Where(sq.Eq{"id": r.mapping.ID(existing)}).
		ToSql()
	if err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error building delete query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("table", r.mapping.Table()).Msg("error deleting row")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return existing, nil
}

func returningClause(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
