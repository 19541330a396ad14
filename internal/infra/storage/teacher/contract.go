package teacher

import (
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// DBExecutor *sql.DB, *sql.Tx или *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
