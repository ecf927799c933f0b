package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ggarcia209/go-receipt-recon/dispatch"
	"github.com/ggarcia209/go-receipt-recon/donation"
	"github.com/ggarcia209/go-receipt-recon/ledger"
	"github.com/ggarcia209/go-receipt-recon/mailer"
)

var (
	sendStart   string
	sendEnd     string
	sendReceipt string
	sendBatch   string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send receipt emails for a date window (defaults to yesterday)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := buildRuntime(ctx)
		if err != nil {
			return err
		}

		_, _, err = sendReceipts(ctx, rt)
		return err
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendStart, "start", "", "start date (YYYY-MM-DD)")
	sendCmd.Flags().StringVar(&sendEnd, "end", "", "end date (YYYY-MM-DD)")
	sendCmd.Flags().StringVar(&sendReceipt, "receipt", "", "limit to one receipt number")
	sendCmd.Flags().StringVar(&sendBatch, "batch", "", "limit to one gift batch number")
}

// sendReceipts runs the dispatch pass and returns the sent list and any
// tickets opened, for reuse by the full daily run.
func sendReceipts(ctx context.Context, rt *runtime) ([]*mailer.SentEmail, []string, error) {
	start, end, err := parseDateWindow(sendStart, sendEnd)
	if err != nil {
		return nil, nil, rt.fail(ctx, "parse-dates", err)
	}

	rows, err := rt.ledger.FetchReceipts(ctx, ledger.FetchReceiptsParams{
		StartDate:     start,
		EndDate:       end,
		ReceiptNumber: normalizeFilter(sendReceipt),
		BatchNumber:   normalizeFilter(sendBatch),
	})
	if err != nil {
		return nil, nil, rt.fail(ctx, "ledger-fetch", err)
	}

	records := make([]*donation.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := donation.NewRecord(row.DonationParams())
		if err != nil {
			rt.log.Warn("rejecting malformed ledger row",
				"transaction_number", row.TransRecNumber,
				"error", err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		rt.log.Info("no donations found for the specified criteria")
		return nil, nil, nil
	}

	dispatcher := dispatch.New(rt.mailer, rt.tickets, dispatch.Settings{
		FromAddress:       rt.settings.FromAddress,
		Subject:           rt.settings.ReceiptSubject,
		TestMode:          rt.settings.TestMode,
		TestModeAddresses: rt.settings.TestModeAddresses,
		BccAddresses:      rt.settings.BccAddresses,
	}, rt.log)

	sent, ticketIDs := dispatcher.SendReceipts(ctx, records)
	rt.log.Info("receipt dispatch complete",
		"donations", len(records),
		"emails_sent", len(sent),
		"tickets", len(ticketIDs))

	return sent, ticketIDs, nil
}
