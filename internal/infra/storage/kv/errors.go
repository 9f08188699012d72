package kv

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует
	ErrNotFound = errors.New("kv.store: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("kv.store: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата запроса
	ErrScanRow = errors.New("kv.store: failed to scan row")

	// ErrDecodeList возвращается, когда значение списка повреждено
	ErrDecodeList = errors.New("kv.store: failed to decode list")

	// ErrUnknownDriver возвращается при неизвестном драйвере хранилища
	ErrUnknownDriver = errors.New("kv.store: unknown driver")
)
