package mailer

import (
	"fmt"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

type InvalidRecipientError struct {
	*apperr.ClientErr
}

func NewInvalidRecipientError() *InvalidRecipientError {
	return &InvalidRecipientError{
		apperr.NewClientError(fmt.Errorf("invalid recipient")),
	}
}

type UnverifiedDomainError struct {
	*apperr.ClientErr
}

func NewUnverifiedDomainError(domain string) *UnverifiedDomainError {
	return &UnverifiedDomainError{
		apperr.NewClientError(fmt.Errorf("unverified domain: %s", domain)),
	}
}

type InvalidSendRequestError struct {
	*apperr.ClientErr
}

func NewInvalidSendRequestError(message string) *InvalidSendRequestError {
	return &InvalidSendRequestError{
		apperr.NewClientError(fmt.Errorf("invalid send request: %s", message)),
	}
}
