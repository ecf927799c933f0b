package recon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ggarcia209/go-receipt-recon/ledger"
	"github.com/ggarcia209/go-receipt-recon/mailer"
	"github.com/ggarcia209/go-receipt-recon/mocks/mailermock"
)

func rows(n int) []ledger.ReceiptRow {
	out := make([]ledger.ReceiptRow, n)
	return out
}

func TestNewReconData(t *testing.T) {
	tests := []struct {
		name       string
		eReceipts  []ledger.ReceiptRow
		emailsSent int
		wantErrors int
	}{
		{name: "under-sending counts the gap", eReceipts: rows(50), emailsSent: 47, wantErrors: 3},
		{name: "over-sending counts the same gap", eReceipts: rows(47), emailsSent: 50, wantErrors: 3},
		{name: "exact match has no discrepancy", eReceipts: rows(12), emailsSent: 12, wantErrors: 0},
		{name: "missing e-receipt set means no discrepancy", eReceipts: nil, emailsSent: 5, wantErrors: 0},
		{name: "empty e-receipt set counts every send", eReceipts: rows(0), emailsSent: 5, wantErrors: 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := NewReconData(rows(60), test.eReceipts, rows(10), test.emailsSent)
			assert.Equal(t, test.wantErrors, data.ErrorCount)
			assert.Equal(t, test.emailsSent, data.EmailsSent)
		})
	}
}

func TestBuildSummaryBody(t *testing.T) {
	r := NewReporter(nil, ReporterSettings{BrowseURL: "https://tracker.example.com/browse/"}, testLogger())
	data := NewReconData(rows(60), rows(50), rows(10), 47)

	tests := []struct {
		name         string
		ticketIDs    []string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:      "counts and ticket links",
			ticketIDs: []string{"RCPT-101", "RCPT-102"},
			wantContains: []string{
				"60", "50", "10", "47", "3",
				" - Issue Tickets: ",
				`<a href="https://tracker.example.com/browse/RCPT-101">RCPT-101</a>`,
				`<a href="https://tracker.example.com/browse/RCPT-102">RCPT-102</a>`,
			},
		},
		{
			name:       "no tickets omits the ticket section",
			ticketIDs:  nil,
			wantAbsent: []string{"Issue Tickets"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body := r.BuildSummaryBody(data, test.ticketIDs)
			for _, want := range test.wantContains {
				assert.Contains(t, body, want)
			}
			for _, absent := range test.wantAbsent {
				assert.NotContains(t, body, absent)
			}
			assert.NotContains(t, body, "{0}")
			assert.NotContains(t, body, "{5}")
		})
	}
}

func TestSendSummary(t *testing.T) {
	settings := ReporterSettings{
		FromAddress: "receipts@example.org",
		To:          []string{"gifts-team@example.org"},
		Cc:          []string{"finance@example.org"},
		BrowseURL:   "https://tracker.example.com/browse/",
	}
	runDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("summary is dated one day after the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mailermock.NewMockMailerLogic(ctrl)

		var captured mailer.SendEmailParams
		m.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params mailer.SendEmailParams) (*mailer.SentEmail, error) {
				captured = params
				return &mailer.SentEmail{MessageID: "msg-1"}, nil
			})

		r := NewReporter(m, settings, testLogger())
		data := NewReconData(rows(2), rows(2), nil, 2)

		sent := r.SendSummary(context.Background(), data, nil, runDate)
		require.NotNil(t, sent)
		assert.Equal(t, "msg-1", sent.MessageID)
		assert.Equal(t, "Gift Receipt Reconciliation - 3/16/2026", captured.Subject)
		assert.Equal(t, settings.FromAddress, captured.From)
		assert.Equal(t, settings.To, captured.To)
		assert.Equal(t, settings.Cc, captured.Cc)
		require.Len(t, captured.Attachments, 1)
		assert.Equal(t, csvAttachmentName, captured.Attachments[0].FileName)
	})

	t.Run("empty dataset sends without attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mailermock.NewMockMailerLogic(ctrl)

		var captured mailer.SendEmailParams
		m.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params mailer.SendEmailParams) (*mailer.SentEmail, error) {
				captured = params
				return &mailer.SentEmail{MessageID: "msg-2"}, nil
			})

		r := NewReporter(m, settings, testLogger())
		sent := r.SendSummary(context.Background(), NewReconData(nil, nil, nil, 0), nil, runDate)
		require.NotNil(t, sent)
		assert.Empty(t, captured.Attachments)
	})

	t.Run("send failure yields no sent record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mailermock.NewMockMailerLogic(ctrl)
		m.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("throttled"))

		r := NewReporter(m, settings, testLogger())
		sent := r.SendSummary(context.Background(), NewReconData(nil, nil, nil, 0), nil, runDate)
		assert.Nil(t, sent)
	})
}
