package availability

import (
	"github.com/m04kA/FlexDesk-BookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
