package booking

import (
	"github.com/xm-division/ATC-BookingService/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so repositories work the same
// against *sql.DB, the instrumented wrapper and open transactions.
type DBExecutor = dbmetrics.DBExecutor
