package booking

import "github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/txmanager"

// Executor abstracts *sql.DB and *sql.Tx so queries run on whichever
// the context carries.
type Executor = txmanager.Executor

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
