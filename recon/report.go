package recon

import (
	"context"
	_ "embed"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.openly.dev/pointy"

	"github.com/ggarcia209/go-receipt-recon/ledger"
	"github.com/ggarcia209/go-receipt-recon/mailer"
)

//go:embed templates/recon_body.html
var reconBodyTemplate string

const shortDateLayout = "1/2/2006"

const csvAttachmentName = "All Gift Receipts.csv"

// ReconData aggregates the counts for one reconciliation window.
// ErrorCount is the absolute difference between the ledger's e-receipt
// count and the emails actually sent; the unsigned metric masks under-
// vs over-sending but is preserved as the reporting contract.
type ReconData struct {
	All        []ledger.ReceiptRow
	EReceipts  []ledger.ReceiptRow
	Paper      []ledger.ReceiptRow
	EmailsSent int
	ErrorCount int
}

// NewReconData computes the discrepancy count at construction. A nil
// (missing) e-receipt set means no discrepancy, as opposed to an empty
// set, which counts every sent email as a discrepancy.
func NewReconData(all, eReceipts, paper []ledger.ReceiptRow, emailsSent int) ReconData {
	errorCount := 0
	if eReceipts != nil {
		errorCount = len(eReceipts) - emailsSent
		if errorCount < 0 {
			errorCount = -errorCount
		}
	}

	return ReconData{
		All:        all,
		EReceipts:  eReceipts,
		Paper:      paper,
		EmailsSent: emailsSent,
		ErrorCount: errorCount,
	}
}

// ReporterSettings holds the summary email routing plus the browse URL
// tickets are linked under.
type ReporterSettings struct {
	FromAddress string
	To          []string
	Cc          []string
	Bcc         []string
	BrowseURL   string
}

type Reporter struct {
	mailer   mailer.MailerLogic
	settings ReporterSettings
	log      *slog.Logger
}

func NewReporter(m mailer.MailerLogic, settings ReporterSettings, log *slog.Logger) *Reporter {
	return &Reporter{
		mailer:   m,
		settings: settings,
		log:      log,
	}
}

// SendSummary emails the reconciliation summary for the run date, with
// the full receipt dataset attached as CSV when non-empty. A send
// failure is logged and yields no sent record.
func (r *Reporter) SendSummary(ctx context.Context, data ReconData, ticketIDs []string, runDate time.Time) *mailer.SentEmail {
	params := mailer.SendEmailParams{
		Subject:     "Gift Receipt Reconciliation - " + runDate.AddDate(0, 0, 1).Format(shortDateLayout),
		From:        r.settings.FromAddress,
		To:          r.settings.To,
		Cc:          r.settings.Cc,
		Bcc:         r.settings.Bcc,
		HtmlBody:    r.BuildSummaryBody(data, ticketIDs),
		Attachments: buildAttachments(data.All),
	}

	sent, err := r.mailer.SendEmail(ctx, params)
	if err != nil {
		r.log.Error("sending reconciliation summary", "error", err)
		return nil
	}
	return sent
}

// BuildSummaryBody renders the five counts and the ticket links into
// the summary template.
func (r *Reporter) BuildSummaryBody(data ReconData, ticketIDs []string) string {
	return strings.NewReplacer(
		"{0}", strconv.Itoa(len(data.All)),
		"{1}", strconv.Itoa(len(data.Paper)),
		"{2}", strconv.Itoa(len(data.EReceipts)),
		"{3}", strconv.Itoa(data.EmailsSent),
		"{4}", strconv.Itoa(data.ErrorCount),
		"{5}", r.ticketInfo(ticketIDs),
	).Replace(reconBodyTemplate)
}

// ticketInfo renders the ticket list as browse links, empty when the
// run opened no tickets.
func (r *Reporter) ticketInfo(ticketIDs []string) string {
	if len(ticketIDs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(" - Issue Tickets: ")
	for i, id := range ticketIDs {
		b.WriteString(`<a href="`)
		b.WriteString(r.settings.BrowseURL)
		b.WriteString(id)
		b.WriteString(`">`)
		b.WriteString(id)
		b.WriteString("</a>")
		if i < len(ticketIDs)-1 {
			b.WriteString(", ")
		}
	}
	return b.String()
}

func buildAttachments(all []ledger.ReceiptRow) []mailer.Attachment {
	if len(all) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(all))
	for _, row := range all {
		rows = append(rows, row.ExportValues())
	}

	return []mailer.Attachment{{
		FileName:    csvAttachmentName,
		Data:        []byte(RenderCSV(ledger.ExportColumns(), rows)),
		ContentType: pointy.String("text/csv"),
	}}
}
