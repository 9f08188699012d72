package booking

import "github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"

// Store хранилище, поверх которого работает репозиторий
type Store = kv.Store
