package kv

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Options параметры подключения к хранилищу
type Options struct {
	Driver   string
	Redis    RedisOptions
	Postgres PostgresOptions
}

type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

type PostgresOptions struct {
	DSN             string
	Table           string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open создает хранилище выбранного драйвера и проверяет соединение
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.Redis.Address,
			Password: opts.Redis.Password,
			DB:       opts.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("%w: Open - redis ping: %v", ErrExecQuery, err)
		}
		return NewRedisStore(client), nil

	case DriverPostgres:
		db, err := sql.Open("postgres", opts.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: Open - postgres: %v", ErrExecQuery, err)
		}
		if opts.Postgres.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.Postgres.MaxOpenConns)
		}
		if opts.Postgres.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.Postgres.MaxIdleConns)
		}
		if opts.Postgres.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(opts.Postgres.ConnMaxLifetime)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: Open - postgres ping: %v", ErrExecQuery, err)
		}

		store := NewPostgresStore(db, opts.Postgres.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
