package find_providers

import "errors"

var (
	// ErrInternal возвращается при ошибках базы знаний
	ErrInternal = errors.New("find_providers: internal error")
)
