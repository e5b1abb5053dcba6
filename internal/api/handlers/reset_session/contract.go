package reset_session

// SessionResetter интерфейс сброса состояния сессии
type SessionResetter interface {
	Reset()
}

type Logger interface {
	Info(format string, v ...interface{})
}
