package secrets

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// Missing or unreadable credentials are configuration failures: the run
// aborts before any receipts are sent.

type SecretNotFoundError struct {
	*apperr.ConfigErr
}

func NewSecretNotFoundError(key string) *SecretNotFoundError {
	return &SecretNotFoundError{
		apperr.NewConfigError(fmt.Errorf("secret not found: %s", key)),
	}
}

type SecretPermissionsError struct {
	*apperr.ConfigErr
}

func NewSecretPermissionsError(key string) *SecretPermissionsError {
	return &SecretPermissionsError{
		apperr.NewConfigError(fmt.Errorf("secret permissions error: %s", key)),
	}
}
