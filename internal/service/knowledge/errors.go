package knowledge

import "errors"

var (
	// ErrRulesMissing возвращается, когда правила приёмов отсутствуют или
	// не проходят валидацию. Фатальная ошибка конфигурации развертывания,
	// не подлежит восстановлению на уровне пользователя.
	ErrRulesMissing = errors.New("knowledge.service: appointment rules missing or invalid")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("knowledge.service: internal error")
)
