package tickets

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// CreateTicketError reports a failed ticket creation. Callers isolate
// these per recipient; the run never aborts on one.
type CreateTicketError struct {
	*apperr.InternalErr
}

func NewCreateTicketError(err error) *CreateTicketError {
	return &CreateTicketError{
		apperr.NewInternalError(fmt.Errorf("create ticket: %w", err)),
	}
}
