package kv

import "context"

// Store key-value хранилище с атомарными примитивами
// Значения - JSON-документы в виде байтов, списки - упорядоченные наборы строк.
// Ключи значений и ключи списков не пересекаются.
type Store interface {
	// Get возвращает значение по ключу или ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set записывает значение, перезаписывая существующее
	Set(ctx context.Context, key string, value []byte) error
	// SetIfAbsent атомарно записывает значение, только если ключа нет.
	// Возвращает true, если запись выполнена.
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
	// Delete удаляет ключ; отсутствие ключа не является ошибкой
	Delete(ctx context.Context, key string) error
	// MGet возвращает значения в порядке ключей; для отсутствующих ключей - nil
	MGet(ctx context.Context, keys []string) ([][]byte, error)

	// Append атомарно добавляет элемент в конец списка
	Append(ctx context.Context, listKey, member string) error
	// Remove атомарно удаляет все вхождения элемента из списка
	Remove(ctx context.Context, listKey, member string) error
	// Members возвращает элементы списка; пустой список, если ключа нет
	Members(ctx context.Context, listKey string) ([]string, error)

	Ping(ctx context.Context) error
	Close() error
}
