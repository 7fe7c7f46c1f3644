package position

import "github.com/xm-division/ATC-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
