package mailbox

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// EnvelopeNotFoundError reports an object deleted between listing and
// fetch.
type EnvelopeNotFoundError struct {
	*apperr.ClientErr
	Key string
}

func NewEnvelopeNotFoundError(key string) *EnvelopeNotFoundError {
	return &EnvelopeNotFoundError{
		ClientErr: apperr.NewClientError(fmt.Errorf("stored email not found: %s", key)),
		Key:       key,
	}
}

// EnvelopeDecodeError reports a stored email object that is not a valid
// envelope.
type EnvelopeDecodeError struct {
	*apperr.InternalErr
	Key string
}

func NewEnvelopeDecodeError(key string, err error) *EnvelopeDecodeError {
	return &EnvelopeDecodeError{
		InternalErr: apperr.NewInternalError(fmt.Errorf("decoding stored email %s: %w", key, err)),
		Key:         key,
	}
}
