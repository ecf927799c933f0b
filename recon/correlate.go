// Package recon reconciles sent receipts against delivery failures and
// produces the daily summary report. The correlator walks the bounce
// inbox over a date window, recovers the affected receipts from the
// archive, and opens exactly one tracking ticket per distinct
// undeliverable recipient per run.
package recon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ggarcia209/go-receipt-recon/bounce"
	"github.com/ggarcia209/go-receipt-recon/mailbox"
	"github.com/ggarcia209/go-receipt-recon/tickets"
)

// undeliverablePrefix is prepended by the mail system to the subject of
// a non-delivery report.
const undeliverablePrefix = "Undeliverable: "

// UndeliverableResult records the correlation outcome for one distinct
// undeliverable recipient. TicketID is empty when ticket creation
// failed; the absence is observable but never aborts the run.
type UndeliverableResult struct {
	Recipient  string
	ReceiptIDs []string
	TicketID   string
}

type Correlator struct {
	bounces        mailbox.MailboxLogic
	archive        mailbox.MailboxLogic
	tickets        tickets.TicketsLogic
	receiptSubject string
	now            func() time.Time
	log            *slog.Logger
}

func NewCorrelator(bounces, archive mailbox.MailboxLogic, t tickets.TicketsLogic, receiptSubject string, log *slog.Logger) *Correlator {
	return &Correlator{
		bounces:        bounces,
		archive:        archive,
		tickets:        t,
		receiptSubject: receiptSubject,
		now:            time.Now,
		log:            log,
	}
}

// ProcessUndeliverables runs one correlation pass over the window from
// fromDate through today inclusive. Recipients are processed at most
// once per pass regardless of how many notifications name them.
func (c *Correlator) ProcessUndeliverables(ctx context.Context, fromDate time.Time) ([]UndeliverableResult, error) {
	subject := undeliverablePrefix + c.receiptSubject

	notices := make([]mailbox.StoredEmail, 0)
	today := c.now()
	for day := fromDate; !afterDay(day, today); day = day.AddDate(0, 0, 1) {
		batch, err := c.bounces.FetchBySubjectAndDate(ctx, subject, day)
		if err != nil {
			return nil, fmt.Errorf("c.bounces.FetchBySubjectAndDate: %w", err)
		}
		notices = append(notices, batch...)
	}

	processed := make(map[string]bool)
	results := make([]UndeliverableResult, 0)

	for _, notice := range notices {
		if !bounce.IsBounceNotice(notice.From) {
			continue
		}

		recipient := bounce.ExtractRecipient(notice.Body)
		if recipient == "" {
			c.log.Debug("no recipient marker in notification", "notification_id", notice.ID)
			continue
		}

		// Mark before any correlation work so a recipient named by
		// several notifications gets exactly one ticket.
		key := strings.ToLower(recipient)
		if processed[key] {
			continue
		}
		processed[key] = true

		result := UndeliverableResult{
			Recipient:  recipient,
			ReceiptIDs: c.collectReceiptIDs(ctx, recipient, fromDate, today),
		}

		ticketID, err := c.tickets.CreateTicket(ctx, tickets.CreateTicketParams{
			Title:       undeliverableTicketTitle(notice.ReceivedDate, recipient),
			Body:        undeliverableTicketBody(recipient, result.ReceiptIDs),
			Attachments: ticketAttachments(notice.Attachments),
		})
		if err != nil {
			c.log.Error("creating undeliverable ticket", "recipient", recipient, "error", err)
		} else {
			result.TicketID = ticketID
		}

		results = append(results, result)
	}

	return results, nil
}

// collectReceiptIDs queries the archive for receipt emails addressed to
// the recipient within the window and extracts their receipt numbers,
// de-duplicated in insertion order. An archive failure for one day is
// logged and contributes nothing; the ticket is still opened.
func (c *Correlator) collectReceiptIDs(ctx context.Context, recipient string, fromDate, today time.Time) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)

	for day := fromDate; !afterDay(day, today); day = day.AddDate(0, 0, 1) {
		emails, err := c.archive.FetchBySubjectAndDate(ctx, c.receiptSubject, day)
		if err != nil {
			c.log.Error("querying receipt archive", "recipient", recipient, "day", day.Format("2006-01-02"), "error", err)
			continue
		}

		for _, email := range emails {
			if !addressedTo(email, recipient) {
				continue
			}
			id := bounce.ExtractReceiptID(email.Body)
			if id == "" {
				c.log.Debug("no receipt number in archived email", "email_id", email.ID)
				continue
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids
}

// TicketIDs returns the ids of the tickets successfully created for the
// given results.
func TicketIDs(results []UndeliverableResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		if r.TicketID != "" {
			ids = append(ids, r.TicketID)
		}
	}
	return ids
}

func addressedTo(email mailbox.StoredEmail, recipient string) bool {
	for _, to := range email.To {
		if strings.EqualFold(to, recipient) {
			return true
		}
	}
	return false
}

func afterDay(day, limit time.Time) bool {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := limit.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).After(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}

func undeliverableTicketTitle(received time.Time, recipient string) string {
	return fmt.Sprintf("%s - %s - Undeliverable Receipt", received.Format(shortDateLayout), recipient)
}

func undeliverableTicketBody(recipient string, receiptIDs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to email receipt(s) to %s\n", recipient)
	b.WriteString("Receipt IDs:\n")
	for _, id := range receiptIDs {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	return b.String()
}

func ticketAttachments(attachments []mailbox.Attachment) []tickets.Attachment {
	out := make([]tickets.Attachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, tickets.Attachment{
			FileName: a.FileName,
			Data:     a.Data,
		})
	}
	return out
}
