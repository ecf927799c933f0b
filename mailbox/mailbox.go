// Package mailbox reads stored email envelopes from an S3-backed mail
// store. The inbound mail rule writes one JSON object per message under
// <subject-slug>/<yyyy-mm-dd>/<message-id>.json; fetching a day's mail
// is a prefix listing plus one get per object.
package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

const keyDateLayout = "2006-01-02"

//go:generate mockgen -destination=../mocks/mailboxmock/mailbox.go -package=mailboxmock . MailboxLogic
type MailboxLogic interface {
	FetchBySubjectAndDate(ctx context.Context, subject string, day time.Time) ([]StoredEmail, error)
}

// S3ClientAPI defines the interface for the AWS S3 client methods used by this package.
//
//go:generate mockgen -destination=./s3_client_api_test.go -package=mailbox . S3ClientAPI
type S3ClientAPI interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Mailbox reads one mail store bucket. The bounce inbox and the receipt
// archive are two Mailbox values over different buckets.
type Mailbox struct {
	svc    S3ClientAPI
	bucket string
}

func NewMailbox(cfg aws.Config, bucket string) *Mailbox {
	return &Mailbox{
		svc:    s3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

// NewMailboxWithClient wires an explicit client. Used by tests.
func NewMailboxWithClient(svc S3ClientAPI, bucket string) *Mailbox {
	return &Mailbox{svc: svc, bucket: bucket}
}

// FetchBySubjectAndDate returns every stored email filed under the
// subject for one calendar day. A day with no mail returns an empty
// list, not an error.
func (m *Mailbox) FetchBySubjectAndDate(ctx context.Context, subject string, day time.Time) ([]StoredEmail, error) {
	prefix := fmt.Sprintf("%s/%s/", subjectSlug(subject), day.Format(keyDateLayout))

	emails := make([]StoredEmail, 0)
	var continuation *string
	for {
		page, err := m.svc.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(m.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, apperr.NewInternalError(fmt.Errorf("m.svc.ListObjectsV2: %w", err))
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			email, err := m.getEnvelope(ctx, *obj.Key)
			if err != nil {
				return nil, err
			}
			emails = append(emails, *email)
		}

		if page.IsTruncated == nil || !*page.IsTruncated {
			return emails, nil
		}
		continuation = page.NextContinuationToken
	}
}

func (m *Mailbox) getEnvelope(ctx context.Context, key string) (*StoredEmail, error) {
	obj, err := m.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notExist *types.NoSuchKey
		var re *awshttp.ResponseError
		switch {
		case errors.As(err, &notExist):
			return nil, NewEnvelopeNotFoundError(key)
		case errors.As(err, &re):
			if re.ResponseError != nil && re.HTTPStatusCode() == http.StatusNotFound {
				return nil, NewEnvelopeNotFoundError(key)
			}
			return nil, apperr.NewInternalError(fmt.Errorf("m.svc.GetObject: %w", re.Err))
		default:
			return nil, apperr.NewInternalError(fmt.Errorf("m.svc.GetObject: %w", err))
		}
	}
	defer obj.Body.Close()

	raw, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, apperr.NewInternalError(fmt.Errorf("io.ReadAll: %w", err))
	}

	email := &StoredEmail{}
	if err := json.Unmarshal(raw, email); err != nil {
		return nil, NewEnvelopeDecodeError(key, err)
	}
	return email, nil
}

// subjectSlug normalizes a subject line into the key segment the
// inbound rule files it under.
func subjectSlug(subject string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(subject)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
