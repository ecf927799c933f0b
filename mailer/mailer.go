// Package mailer sends the receipt and reconciliation emails through
// SES and returns a sent record for each successful delivery.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// CharSet repsents the charset type for email messages (UTF-8)
const CharSet = "UTF-8"

//go:generate mockgen -destination=../mocks/mailermock/mailer.go -package=mailermock . MailerLogic
type MailerLogic interface {
	SendEmail(ctx context.Context, params SendEmailParams) (*SentEmail, error)
}

// SESClientAPI defines the interface for the AWS SES client methods used by this package.
//
//go:generate mockgen -destination=./ses_client_api_test.go -package=mailer . SESClientAPI
type SESClientAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type Mailer struct {
	svc SESClientAPI
	now func() time.Time
}

func NewMailer(cfg aws.Config) *Mailer {
	return &Mailer{
		svc: sesv2.NewFromConfig(cfg),
		now: time.Now,
	}
}

// NewMailerWithClient wires an explicit client. Used by tests.
func NewMailerWithClient(svc SESClientAPI) *Mailer {
	return &Mailer{svc: svc, now: time.Now}
}

// SendEmail sends one message. To, Cc, and Bcc addresses are passed as
// []string; an empty To list is rejected before any call is made.
func (m *Mailer) SendEmail(ctx context.Context, params SendEmailParams) (*SentEmail, error) {
	if len(params.To) == 0 {
		return nil, NewInvalidRecipientError()
	}

	// Assemble the email.
	var htmlContent *types.Content
	if params.HtmlBody != "" {
		htmlContent = &types.Content{
			Charset: aws.String(CharSet),
			Data:    aws.String(params.HtmlBody),
		}
	}

	var attachments = make([]types.Attachment, 0)
	for _, attachment := range params.Attachments {
		attachments = append(attachments, types.Attachment{
			FileName:    aws.String(attachment.FileName),
			RawContent:  attachment.Data,
			ContentType: attachment.ContentType,
		})
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses:  params.To,
			CcAddresses:  params.Cc,
			BccAddresses: params.Bcc,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Body: &types.Body{
					Html: htmlContent,
					Text: &types.Content{
						Charset: aws.String(CharSet),
						Data:    aws.String(params.TextBody),
					},
				},
				Subject: &types.Content{
					Charset: aws.String(CharSet),
					Data:    aws.String(params.Subject),
				},
				Attachments: attachments,
			},
		},
		ReplyToAddresses: params.ReplyTo,
		FromEmailAddress: aws.String(params.From),
	}

	// Attempt to send the email.
	out, err := m.svc.SendEmail(ctx, input)
	if err != nil {
		var re *awshttp.ResponseError
		var msgReject *types.MessageRejected
		var domainNotVerified *types.MailFromDomainNotVerifiedException

		switch {
		case errors.As(err, &msgReject):
			var msg = "message rejected"
			if msgReject.Message != nil {
				msg = *msgReject.Message
			}
			return nil, apperr.NewInternalError(fmt.Errorf("m.svc.SendEmail: %s", msg))
		case errors.As(err, &domainNotVerified):
			return nil, NewUnverifiedDomainError(aws.ToString(domainNotVerified.Message))
		case errors.As(err, &re):
			if re.ResponseError == nil {
				return nil, apperr.NewInternalError(fmt.Errorf("m.svc.SendEmail: %w", re.Err))
			}
			switch re.HTTPStatusCode() {
			case http.StatusBadRequest:
				return nil, NewInvalidSendRequestError(re.ResponseError.Error())
			case http.StatusTooManyRequests:
				return nil, apperr.NewRetryableInternalError(fmt.Errorf("m.svc.SendEmail: %w", re.Err))
			default:
				return nil, apperr.NewInternalError(fmt.Errorf("m.svc.SendEmail: %w", re.Err))
			}
		default:
			return nil, apperr.NewInternalError(fmt.Errorf("m.svc.SendEmail: %w", err))
		}
	}

	return &SentEmail{
		MessageID: aws.ToString(out.MessageId),
		Subject:   params.Subject,
		To:        params.To,
		SentAt:    m.now(),
	}, nil
}
