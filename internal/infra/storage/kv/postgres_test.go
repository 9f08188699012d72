package kv

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(db, ""), mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := newPostgresMock(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("booking:B-1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"B-1"}`)))

	got, err := store.Get(ctx, "booking:B-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"B-1"}`, string(got))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("booking:B-2").
		WillReturnError(sql.ErrNoRows)

	_, err = store.Get(ctx, "booking:B-2")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetIfAbsent(t *testing.T) {
	store, mock := newPostgresMock(t)
	ctx := context.Background()
	query := regexp.QuoteMeta("INSERT INTO kv_store (key,value) VALUES ($1,$2) ON CONFLICT (key) DO NOTHING")

	mock.ExpectExec(query).
		WithArgs("slot:a", `{"bookingId":"B-1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs("slot:a", `{"bookingId":"B-2"}`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := store.SetIfAbsent(ctx, "slot:a", []byte(`{"bookingId":"B-1"}`))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetIfAbsent(ctx, "slot:a", []byte(`{"bookingId":"B-2"}`))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetAndDelete(t *testing.T) {
	store, mock := newPostgresMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")).
		WithArgs("booking:B-1", `{}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key = $1")).
		WithArgs("booking:B-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(ctx, "booking:B-1", []byte(`{}`)))
	require.NoError(t, store.Delete(ctx, "booking:B-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MGetPreservesOrder(t *testing.T) {
	store, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value FROM kv_store WHERE key IN ($1,$2,$3)")).
		WithArgs("a", "b", "c").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("c", []byte(`3`)).
			AddRow("a", []byte(`1`)))

	values, err := store.MGet(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "1", string(values[0]))
	assert.Nil(t, values[1])
	assert.Equal(t, "3", string(values[2]))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Lists(t *testing.T) {
	store, mock := newPostgresMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store (key,value) VALUES ($1,jsonb_build_array($2::text)) ON CONFLICT (key) DO UPDATE SET value = kv_store.value || EXCLUDED.value")).
		WithArgs("payments:pending", "P-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE kv_store SET value = value - $1::text WHERE key = $2")).
		WithArgs("P-1", "payments:pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("payments:pending").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["P-2","P-3"]`)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("payments:all").
		WillReturnError(sql.ErrNoRows)

	require.NoError(t, store.Append(ctx, "payments:pending", "P-1"))
	require.NoError(t, store.Remove(ctx, "payments:pending", "P-1"))

	members, err := store.Members(ctx, "payments:pending")
	require.NoError(t, err)
	assert.Equal(t, []string{"P-2", "P-3"}, members)

	members, err = store.Members(ctx, "payments:all")
	require.NoError(t, err)
	assert.Empty(t, members)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ExecError(t *testing.T) {
	store, mock := newPostgresMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store")).
		WillReturnError(errors.New("connection reset"))

	_, err := store.SetIfAbsent(context.Background(), "slot:a", []byte(`{}`))
	assert.ErrorIs(t, err, ErrExecQuery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db, "bike_kv")
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bike_kv")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
