// Package alert publishes run-failure notices to the operations SNS
// topic. Only the command layer calls it, and only when a run aborts;
// a publish failure is logged by the caller and never masks the
// original error.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

//go:generate mockgen -destination=../mocks/alertmock/alert.go -package=alertmock . AlertLogic
type AlertLogic interface {
	PublishRunFailure(ctx context.Context, runID, stage string, runErr error) (string, error)
}

// SNSClientAPI defines the interface for the AWS SNS client methods used by this package.
//
//go:generate mockgen -destination=./sns_client_api_test.go -package=alert . SNSClientAPI
type SNSClientAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Alert struct {
	svc      SNSClientAPI
	topicArn string
}

func NewAlert(cfg aws.Config, topicArn string) *Alert {
	return &Alert{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}
}

// NewAlertWithClient wires an explicit client. Used by tests.
func NewAlertWithClient(svc SNSClientAPI, topicArn string) *Alert {
	return &Alert{svc: svc, topicArn: topicArn}
}

// PublishRunFailure notifies operations that a run aborted. Returns the
// published message id.
func (a *Alert) PublishRunFailure(ctx context.Context, runID, stage string, runErr error) (string, error) {
	msg := fmt.Sprintf("%s receipt run %s aborted during %s: %v",
		time.Now().UTC().Format(time.RFC3339), runID, stage, runErr)

	result, err := a.svc.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.topicArn),
		Subject:  aws.String("Receipt run failure"),
		Message:  aws.String(msg),
	})
	if err != nil {
		return "", apperr.NewInternalError(fmt.Errorf("a.svc.Publish: %w", err))
	}

	return aws.ToString(result.MessageId), nil
}
