package check_insurance

import "errors"

var (
	// ErrInternal возвращается при ошибках базы знаний
	ErrInternal = errors.New("check_insurance: internal error")
)
