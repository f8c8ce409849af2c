package booking

import "github.com/m04kA/barbershop-booking/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
