// Package dispatch sends one receipt email per validated donation
// record. Each record is isolated: a failed send is logged and counted
// against the run, never allowed to stop the remaining records.
package dispatch

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ggarcia209/go-receipt-recon/apperr"
	"github.com/ggarcia209/go-receipt-recon/donation"
	"github.com/ggarcia209/go-receipt-recon/mailer"
	"github.com/ggarcia209/go-receipt-recon/tickets"
)

//go:embed templates/receipt_body.html
var receiptBodyTemplate string

// shortDateLayout matches the date rendering the receipt template has
// always used.
const shortDateLayout = "1/2/2006"

// Settings holds the routing configuration for one dispatch pass,
// passed in explicitly rather than read from process-global state.
type Settings struct {
	FromAddress       string
	Subject           string
	TestMode          bool
	TestModeAddresses []string
	BccAddresses      []string
}

type Dispatcher struct {
	mailer   mailer.MailerLogic
	tickets  tickets.TicketsLogic
	settings Settings
	log      *slog.Logger
}

func New(m mailer.MailerLogic, t tickets.TicketsLogic, settings Settings, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:   m,
		tickets:  t,
		settings: settings,
		log:      log,
	}
}

// SendReceipts attempts delivery for every record and returns the sent
// list plus any tickets opened. Per-record failures are logged and
// skipped. If the dispatch pass itself fails (not one record), a single
// generic ticket is opened for the run and the partial sent list is
// returned.
func (d *Dispatcher) SendReceipts(ctx context.Context, records []*donation.Record) ([]*mailer.SentEmail, []string) {
	sent, err := d.sendAll(ctx, records)
	if err == nil {
		return sent, []string{}
	}

	d.log.Error("receipt dispatch aborted", "error", err, "sent", len(sent), "total", len(records))

	ticketID, terr := d.tickets.CreateTicket(ctx, tickets.CreateTicketParams{
		Title: "Receipt run failure",
		Body:  fmt.Sprintf("Receipt dispatch aborted after %d of %d sends: %v", len(sent), len(records), err),
	})
	if terr != nil {
		d.log.Error("creating run failure ticket", "error", terr)
		return sent, []string{}
	}
	return sent, []string{ticketID}
}

func (d *Dispatcher) sendAll(ctx context.Context, records []*donation.Record) ([]*mailer.SentEmail, error) {
	sent := make([]*mailer.SentEmail, 0, len(records))

	for _, rec := range records {
		to, err := d.resolveRecipients(rec)
		if err != nil {
			// Routing misconfiguration affects every record equally.
			return sent, err
		}

		result, err := d.mailer.SendEmail(ctx, mailer.SendEmailParams{
			Subject:  d.settings.Subject,
			From:     d.settings.FromAddress,
			To:       to,
			Bcc:      d.settings.BccAddresses,
			HtmlBody: BuildReceiptBody(rec),
		})
		if err != nil {
			d.log.Error("sending receipt",
				"receipt_number", rec.ReceiptNumber,
				"donor_id", rec.DonorID,
				"error", err)
			continue
		}
		sent = append(sent, result)
	}

	return sent, nil
}

// resolveRecipients routes the record. Test mode overrides every
// record's routing with the fixed override list.
func (d *Dispatcher) resolveRecipients(rec *donation.Record) ([]string, error) {
	if d.settings.TestMode {
		if len(d.settings.TestModeAddresses) == 0 {
			return nil, apperr.NewConfigError(fmt.Errorf("test mode enabled with no override addresses"))
		}
		return d.settings.TestModeAddresses, nil
	}
	return []string{rec.EmailAddress}, nil
}

// BuildReceiptBody renders the receipt email body for one donation.
func BuildReceiptBody(rec *donation.Record) string {
	return strings.NewReplacer(
		"{0}", donation.Disclosure(rec.DisclosureRequired),
		"{1}", rec.DonorName,
		"{2}", rec.GiftReceivedDate.Format(shortDateLayout),
		"{3}", rec.ReceiptNumber,
		"{4}", donation.FormatAllocations(rec),
		"{5}", donation.FormatCurrencyValue(rec.TotalAmount),
		"{6}", donation.FormatCurrency(rec.PremiumAmount),
		"{7}", donation.FormatCurrency(rec.TotalGiftAmount),
	).Replace(receiptBodyTemplate)
}
