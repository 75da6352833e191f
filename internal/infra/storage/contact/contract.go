package contact

import "github.com/m04kA/SMC-CharterService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
