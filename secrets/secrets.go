// Package secrets resolves run credentials (the ticket API token) from
// Secrets Manager at startup.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	sm "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

//go:generate mockgen -destination=../mocks/secretsmock/secrets.go -package=secretsmock . SecretsLogic
type SecretsLogic interface {
	GetSecret(ctx context.Context, key string) (string, error)
}

// SecretsManagerClientAPI defines the interface for the AWS SecretsManager client methods used by this package.
//
//go:generate mockgen -destination=./secrets_manager_client_test.go -package=secrets . SecretsManagerClientAPI
type SecretsManagerClientAPI interface {
	GetSecretValue(ctx context.Context, params *sm.GetSecretValueInput, optFns ...func(*sm.Options)) (*sm.GetSecretValueOutput, error)
}

type Secrets struct {
	svc SecretsManagerClientAPI
}

func NewSecrets(cfg aws.Config) *Secrets {
	return &Secrets{
		svc: sm.NewFromConfig(cfg),
	}
}

// NewSecretsWithClient wires an explicit client. Used by tests.
func NewSecretsWithClient(svc SecretsManagerClientAPI) *Secrets {
	return &Secrets{svc: svc}
}

// GetSecret returns the secret string at the given key.
func (s *Secrets) GetSecret(ctx context.Context, key string) (string, error) {
	secret, err := s.svc.GetSecretValue(ctx, &sm.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		var notExist *types.ResourceNotFoundException
		var re *awshttp.ResponseError
		switch {
		case errors.As(err, &notExist):
			return "", NewSecretNotFoundError(key)
		case errors.As(err, &re):
			if re.ResponseError == nil {
				return "", apperr.NewInternalError(fmt.Errorf("s.svc.GetSecretValue: %w", re.Err))
			}
			switch re.ResponseError.HTTPStatusCode() {
			case http.StatusUnauthorized,
				http.StatusForbidden:
				return "", NewSecretPermissionsError(key)
			case http.StatusNotFound:
				return "", NewSecretNotFoundError(key)
			default:
				return "", apperr.NewInternalError(fmt.Errorf("s.svc.GetSecretValue: %w", re.Err))
			}
		default:
			return "", apperr.NewInternalError(fmt.Errorf("s.svc.GetSecretValue: %w", err))
		}
	}

	if secret.SecretString != nil {
		return *secret.SecretString, nil
	}
	return string(secret.SecretBinary), nil
}
