package booking

import "github.com/peterjohnpitcher/anchor-parking/pkg/dbmetrics"

// DBExecutor database executor used by the repository
type DBExecutor = dbmetrics.DBExecutor
