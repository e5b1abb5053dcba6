package knowledge

import "github.com/m04kA/SMC-CareCoordinator/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Поддерживает *sql.DB и обёртку *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
