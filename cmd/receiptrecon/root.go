// Command receiptrecon runs the gift receipt mailing and reconciliation
// batch: receipt sends for a date window, bounce correlation against
// the receipt archive, and the daily summary report.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ggarcia209/go-receipt-recon/alert"
	"github.com/ggarcia209/go-receipt-recon/config"
	"github.com/ggarcia209/go-receipt-recon/ledger"
	"github.com/ggarcia209/go-receipt-recon/logging"
	"github.com/ggarcia209/go-receipt-recon/mailbox"
	"github.com/ggarcia209/go-receipt-recon/mailer"
	"github.com/ggarcia209/go-receipt-recon/secrets"
	"github.com/ggarcia209/go-receipt-recon/tickets"
)

const (
	flagDateLayout = "2006-01-02"

	// Ad-hoc receipt and batch filters are only honored at their fixed
	// ledger width; anything else is treated as absent.
	filterLength = 10
)

var (
	configPath string
	debugLog   bool
)

var rootCmd = &cobra.Command{
	Use:           "receiptrecon",
	Short:         "Send gift receipt emails and reconcile them against delivery failures",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "receiptrecon.yaml", "path to the settings file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")
	rootCmd.AddCommand(sendCmd, runCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runtime wires one run's collaborators. Everything here is shared
// setup: a failure constructing it aborts the run before any I/O that
// could leave partial results.
type runtime struct {
	settings *config.Settings
	log      *slog.Logger
	runID    string

	ledger  ledger.LedgerLogic
	mailer  mailer.MailerLogic
	bounces mailbox.MailboxLogic
	archive mailbox.MailboxLogic
	tickets tickets.TicketsLogic
	alert   alert.AlertLogic
}

func buildRuntime(ctx context.Context) (*runtime, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		slog.Error("loading settings", "path", configPath, "error", err)
		return nil, err
	}

	log, runID := logging.NewRunLogger(settings.LogFile, debugLog)

	awsCfg, err := settings.NewAWSConfig(ctx)
	if err != nil {
		log.Error("loading AWS configuration", "error", err)
		return nil, err
	}

	token, err := secrets.NewSecrets(awsCfg).GetSecret(ctx, settings.TicketTokenSecret)
	if err != nil {
		log.Error("resolving ticket API token", "secret", settings.TicketTokenSecret, "error", err)
		return nil, err
	}

	rt := &runtime{
		settings: settings,
		log:      log,
		runID:    runID,
		ledger:   ledger.NewLedger(awsCfg, settings.LedgerTable),
		mailer:   mailer.NewMailer(awsCfg),
		bounces:  mailbox.NewMailbox(awsCfg, settings.BounceBucket),
		archive:  mailbox.NewMailbox(awsCfg, settings.ArchiveBucket),
		tickets:  tickets.NewClient(settings.TicketBaseURL, token),
	}
	if settings.AlertTopicARN != "" {
		rt.alert = alert.NewAlert(awsCfg, settings.AlertTopicARN)
	}
	return rt, nil
}

// fail logs the aborting failure, alerts operations when a topic is
// configured, and returns the original error unchanged.
func (rt *runtime) fail(ctx context.Context, stage string, err error) error {
	rt.log.Error("run aborted", "stage", stage, "error", err)
	if rt.alert != nil {
		if _, aerr := rt.alert.PublishRunFailure(ctx, rt.runID, stage, err); aerr != nil {
			rt.log.Error("publishing run failure alert", "error", aerr)
		}
	}
	return err
}

// parseDateWindow resolves the start/end flags, defaulting both to
// yesterday when unset.
func parseDateWindow(startFlag, endFlag string) (time.Time, time.Time, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	start := yesterday
	end := yesterday

	var err error
	if startFlag != "" {
		if start, err = time.Parse(flagDateLayout, startFlag); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startFlag, err)
		}
	}
	if endFlag != "" {
		if end, err = time.Parse(flagDateLayout, endFlag); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endFlag, err)
		}
	}
	return start, end, nil
}

// normalizeFilter trims an ad-hoc receipt/batch filter and drops it
// unless it matches the ledger's fixed identifier width.
func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if len(v) != filterLength {
		return ""
	}
	return v
}
