package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ggarcia209/go-receipt-recon/recon"
)

var runFrom string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full daily pass: send receipts, correlate bounces, email the summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := buildRuntime(ctx)
		if err != nil {
			return err
		}

		sent, ticketIDs, err := sendReceipts(ctx, rt)
		if err != nil {
			return err
		}

		start, end, err := parseDateWindow(sendStart, sendEnd)
		if err != nil {
			return rt.fail(ctx, "parse-dates", err)
		}

		fromDate := start
		if runFrom != "" {
			if fromDate, err = time.Parse(flagDateLayout, runFrom); err != nil {
				return rt.fail(ctx, "parse-dates", err)
			}
		}

		correlator := recon.NewCorrelator(rt.bounces, rt.archive, rt.tickets, rt.settings.ReceiptSubject, rt.log)
		results, err := correlator.ProcessUndeliverables(ctx, fromDate)
		if err != nil {
			return rt.fail(ctx, "undeliverables", err)
		}
		ticketIDs = append(ticketIDs, recon.TicketIDs(results)...)
		rt.log.Info("undeliverable correlation complete",
			"recipients", len(results),
			"tickets", len(recon.TicketIDs(results)))

		rows, err := rt.ledger.FetchReconRows(ctx, start, end)
		if err != nil {
			return rt.fail(ctx, "recon-fetch", err)
		}

		data := recon.NewReconData(rows.All, rows.EReceipts, rows.Paper, len(sent))
		reporter := recon.NewReporter(rt.mailer, recon.ReporterSettings{
			FromAddress: rt.settings.FromAddress,
			To:          rt.settings.ReconTo,
			Cc:          rt.settings.ReconCc,
			Bcc:         rt.settings.ReconBcc,
			BrowseURL:   rt.settings.TicketBrowseURL,
		}, rt.log)

		if summary := reporter.SendSummary(ctx, data, ticketIDs, end); summary != nil {
			rt.log.Info("reconciliation summary sent", "message_id", summary.MessageID)
		}

		rt.log.Info("daily run complete",
			"all_receipts", len(data.All),
			"e_receipts", len(data.EReceipts),
			"paper_receipts", len(data.Paper),
			"emails_sent", data.EmailsSent,
			"errors", data.ErrorCount)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&sendStart, "start", "", "start date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&sendEnd, "end", "", "end date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runFrom, "from", "", "scan bounces from this date (defaults to start)")
}
