package knowledge

import "errors"

var (
	// ErrRulesNotFound возвращается, когда правила приёмов отсутствуют в базе знаний
	ErrRulesNotFound = errors.New("knowledge.repository: appointment rules not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("knowledge.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("knowledge.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("knowledge.repository: failed to scan row")
)
