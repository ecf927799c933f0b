// Package config loads and validates the process-wide settings for a
// receipt run. Settings come from a YAML file with a small set of
// environment overrides; missing required settings abort the run before
// any I/O begins.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"gopkg.in/yaml.v3"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// Settings holds every ambient value the dispatcher, correlator, and
// reporter constructors take. It replaces the globally-read settings
// singleton of earlier iterations of this pipeline.
type Settings struct {
	Region string `yaml:"region"`

	// Ledger
	LedgerTable string `yaml:"ledger_table"`

	// Mailboxes (S3 buckets holding stored email envelopes)
	BounceBucket  string `yaml:"bounce_bucket"`
	ArchiveBucket string `yaml:"archive_bucket"`

	// Outbound receipt email
	FromAddress       string   `yaml:"from_address"`
	ReceiptSubject    string   `yaml:"receipt_subject"`
	TestMode          bool     `yaml:"test_mode"`
	TestModeAddresses []string `yaml:"test_mode_addresses"`
	BccAddresses      []string `yaml:"bcc_addresses"`

	// Reconciliation summary email
	ReconTo  []string `yaml:"recon_to"`
	ReconCc  []string `yaml:"recon_cc"`
	ReconBcc []string `yaml:"recon_bcc"`

	// Ticket tracker
	TicketBaseURL     string `yaml:"ticket_base_url"`
	TicketTokenSecret string `yaml:"ticket_token_secret"`
	TicketBrowseURL   string `yaml:"ticket_browse_url"`

	// Operations
	AlertTopicARN string `yaml:"alert_topic_arn"`
	LogFile       string `yaml:"log_file"`
}

// Load reads the settings file at path, applies environment overrides,
// and validates required fields.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigError(fmt.Errorf("os.ReadFile: %w", err))
	}

	s := &Settings{}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, apperr.NewConfigError(fmt.Errorf("yaml.Unmarshal: %w", err))
	}

	s.applyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// applyEnvOverrides lets operators force safe routing without editing
// the settings file. RECEIPT_RECON_TEST_MODE=true wins over the file.
func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv("RECEIPT_RECON_REGION"); v != "" {
		s.Region = v
	}
	if v := os.Getenv("RECEIPT_RECON_TEST_MODE"); v != "" {
		s.TestMode = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("RECEIPT_RECON_TEST_ADDRESSES"); v != "" {
		s.TestModeAddresses = SplitAddressList(v)
	}
}

// Validate reports every missing required setting in one error so a
// misconfigured deployment is fixed in one pass.
func (s *Settings) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"ledger_table", s.LedgerTable},
		{"bounce_bucket", s.BounceBucket},
		{"archive_bucket", s.ArchiveBucket},
		{"from_address", s.FromAddress},
		{"receipt_subject", s.ReceiptSubject},
		{"ticket_base_url", s.TicketBaseURL},
		{"ticket_token_secret", s.TicketTokenSecret},
	}

	missing := make([]string, 0)
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return apperr.NewConfigError(fmt.Errorf("missing required settings: %s", strings.Join(missing, ", ")))
	}

	if s.TestMode && len(s.TestModeAddresses) == 0 {
		return apperr.NewConfigError(fmt.Errorf("test_mode enabled but test_mode_addresses is empty"))
	}
	return nil
}

// SplitAddressList splits a semicolon-delimited address list, dropping
// empty entries. Matches the format used by the legacy settings store.
func SplitAddressList(v string) []string {
	out := make([]string, 0)
	for _, addr := range strings.Split(v, ";") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// NewAWSConfig builds the shared AWS SDK configuration for all service
// clients in a run.
func (s *Settings) NewAWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if s.Region != "" {
		opts = append(opts, awsconfig.WithRegion(s.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, apperr.NewConfigError(fmt.Errorf("config.LoadDefaultConfig: %w", err))
	}
	return cfg, nil
}

// NewAWSConfigFromStatic builds an AWS SDK configuration from explicit
// credentials. Used by integration tooling; production runs rely on the
// default provider chain.
func (s *Settings) NewAWSConfigFromStatic(ctx context.Context, accessKeyID, secretKey, sessionToken string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(s.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, secretKey, sessionToken,
		)),
	)
	if err != nil {
		return aws.Config{}, apperr.NewConfigError(fmt.Errorf("config.LoadDefaultConfig: %w", err))
	}
	return cfg, nil
}
