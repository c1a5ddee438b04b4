package lock

import "errors"

var (
	// ErrNotAcquired возвращается, когда ключ уже удерживается другим запросом
	ErrNotAcquired = errors.New("lock: already held")

	// ErrBackend возвращается при ошибке хранилища блокировок
	ErrBackend = errors.New("lock: backend error")
)
