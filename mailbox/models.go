package mailbox

import "time"

// StoredEmail is the JSON envelope the inbound mail rule writes to the
// mailbox bucket for each received message.
type StoredEmail struct {
	ID           string       `json:"id"`
	From         string       `json:"from"`
	To           []string     `json:"to"`
	Subject      string       `json:"subject"`
	Body         string       `json:"body"`
	ReceivedDate time.Time    `json:"received_date"`
	Attachments  []Attachment `json:"attachments,omitempty"`
}

// Attachment is one attachment carried by a stored email.
type Attachment struct {
	FileName    string `json:"file_name"`
	Data        []byte `json:"data"`
	ContentType string `json:"content_type,omitempty"`
}
