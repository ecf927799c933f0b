package mailer

import "time"

type SendEmailParams struct {
	Subject     string       `json:"subject"`
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Cc          []string     `json:"cc,omitempty"`
	Bcc         []string     `json:"bcc,omitempty"`
	ReplyTo     []string     `json:"reply_to,omitempty"`
	TextBody    string       `json:"text_body"`
	HtmlBody    string       `json:"html_body,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	FileName    string  `json:"file_name"`
	Data        []byte  `json:"data"`
	ContentType *string `json:"content_type,omitempty"`
}

// SentEmail is the log entry for one successful delivery. The sent list
// feeds the reconciliation report's emails-sent count.
type SentEmail struct {
	MessageID string    `json:"message_id"`
	Subject   string    `json:"subject"`
	To        []string  `json:"to"`
	SentAt    time.Time `json:"sent_at"`
}
