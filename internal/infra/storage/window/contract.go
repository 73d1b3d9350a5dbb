package window

import "github.com/estudioluz/booking-service/pkg/txmanager"

// DBExecutor is the query surface the repository needs (*sql.DB or *sql.Tx)
type DBExecutor = txmanager.Executor
