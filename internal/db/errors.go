package db

import "errors"

// Op constants name the failing command or statement kind for error context.
const (
	OpPing    = "PING"
	OpHGetAll = "HGETALL"
	OpScan    = "SCAN"
	OpQuery   = "QUERY"
	OpExec    = "EXEC"
	OpBegin   = "BEGIN"
	OpCommit  = "COMMIT"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// OpOf returns the operation of the first *Error in err's chain, or "".
func OpOf(err error) string {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Op
	}
	return ""
}
