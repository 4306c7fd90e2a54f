package bundle

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store is the narrow storage port the synchronizer runs against. It is
// deliberately small: parameterized reads and writes, identity retrieval for
// inserted rows, and bulk delete by a key column.
//
// Implementations do not manage transactions. The caller decides the
// transaction boundary and hands the corresponding handle to NewStore;
// ExecuteReturningID is only reliable inside a transaction, where all
// statements share one connection.
type Store interface {
	// Execute runs a parameterized write statement.
	Execute(ctx context.Context, query string, args ...any) error
	// ExecuteReturningID runs a parameterized insert and returns the
	// generated identity of the inserted row.
	ExecuteReturningID(ctx context.Context, query string, args ...any) (int64, error)
	// FetchRows runs a parameterized read and returns the rows as column
	// maps, in the order the store returned them.
	FetchRows(ctx context.Context, query string, args ...any) ([]map[string]any, error)
	// DeleteWhereIn deletes every row of table whose column value is in ids.
	DeleteWhereIn(ctx context.Context, table, column string, ids []int64) error
}

// DBStore implements Store on top of a *gorm.DB, which may be a transaction
// handle obtained from gorm's Transaction callback.
type DBStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm handle in the Store port.
func NewStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Execute(ctx context.Context, query string, args ...any) error {
	if err := s.db.WithContext(ctx).Exec(query, args...).Error; err != nil {
		return fmt.Errorf("execute failed: %w", err)
	}
	return nil
}

func (s *DBStore) ExecuteReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	if err := s.db.WithContext(ctx).Exec(query, args...).Error; err != nil {
		return 0, fmt.Errorf("execute failed: %w", err)
	}

	// LAST_INSERT_ID is connection-scoped; within the caller's transaction
	// this statement runs on the same connection as the insert above.
	var id int64
	if err := s.db.WithContext(ctx).Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch generated id: %w", err)
	}
	return id, nil
}

func (s *DBStore) FetchRows(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	dbRows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var result []map[string]any
	for dbRows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := dbRows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return result, nil
}

func (s *DBStore) DeleteWhereIn(ctx context.Context, table, column string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("`%s` IN ?", column), ids).
		Delete(nil)

	if result.Error != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, result.Error)
	}
	return nil
}
