package catalog

import "github.com/m04kA/barbershop-booking/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД
type DBExecutor = dbmetrics.DBExecutor
