package ledger

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// QueryError wraps a failed table scan. The ledger is shared setup for
// the whole run, so callers treat this as fatal.
type QueryError struct {
	*apperr.InternalErr
	Table string
}

func NewQueryError(table string, err error) *QueryError {
	return &QueryError{
		InternalErr: apperr.NewInternalError(fmt.Errorf("ledger query failed for table %s: %w", table, err)),
		Table:       table,
	}
}
