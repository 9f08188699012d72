package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BikeService/pkg/psqlbuilder"
)

// DefaultTable таблица хранилища по умолчанию
const DefaultTable = "kv_store"

// DBExecutor интерфейс для выполнения запросов
// Поддерживает *sql.DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PingContext(ctx context.Context) error
	Close() error
}

// PostgresStore хранилище поверх одной таблицы (key TEXT PRIMARY KEY, value JSONB)
// SetIfAbsent - INSERT ... ON CONFLICT DO NOTHING, списки - JSON-массивы,
// изменяемые одним UPSERT/UPDATE запросом.
type PostgresStore struct {
	db    DBExecutor
	table string
}

// NewPostgresStore создает хранилище; пустое имя таблицы заменяется на DefaultTable
func NewPostgresStore(db DBExecutor, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStore{db: db, table: table}
}

// EnsureSchema создает таблицу, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value JSONB NOT NULL)`, s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrScanRow, key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert(s.table).
		Columns("key", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *PostgresStore) SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error) {
	query, args, err := psqlbuilder.Insert(s.table).
		Columns("key", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - key=%s: %v", ErrExecQuery, key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: SetIfAbsent - rows affected: %v", ErrExecQuery, err)
	}
	return affected == 1, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(s.table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *PostgresStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	query, args, err := psqlbuilder.Select("key", "value").
		From(s.table).
		Where(squirrel.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MGet - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MGet - %d keys: %v", ErrExecQuery, len(keys), err)
	}
	defer rows.Close()

	found := make(map[string][]byte, len(keys))
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: MGet - scan row: %v", ErrScanRow, err)
		}
		found[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MGet - rows iteration: %v", ErrScanRow, err)
	}

	result := make([][]byte, len(keys))
	for i, key := range keys {
		result[i] = found[key]
	}
	return result, nil
}

func (s *PostgresStore) Append(ctx context.Context, listKey, member string) error {
	query, args, err := psqlbuilder.Insert(s.table).
		Columns("key", "value").
		Values(listKey, squirrel.Expr("jsonb_build_array(?::text)", member)).
		Suffix(fmt.Sprintf("ON CONFLICT (key) DO UPDATE SET value = %s.value || EXCLUDED.value", s.table)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - list=%s: %v", ErrExecQuery, listKey, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, listKey, member string) error {
	// jsonb "-" с текстовым операндом удаляет все совпадающие строковые элементы массива
	query, args, err := psqlbuilder.Update(s.table).
		Set("value", squirrel.Expr("value - ?::text", member)).
		Where(squirrel.Eq{"key": listKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - list=%s: %v", ErrExecQuery, listKey, err)
	}
	return nil
}

func (s *PostgresStore) Members(ctx context.Context, listKey string) ([]string, error) {
	raw, err := s.Get(ctx, listKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	var members []string
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("%w: Members - list=%s: %v", ErrDecodeList, listKey, err)
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
