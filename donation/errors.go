package donation

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// ValidationError rejects a malformed ledger row before dispatch.
type ValidationError struct {
	*apperr.ClientErr
	Field string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		ClientErr: apperr.NewClientError(fmt.Errorf("invalid donation record: %s: %s", field, reason)),
		Field:     field,
	}
}
