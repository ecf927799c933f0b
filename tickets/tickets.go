// Package tickets opens tracking tickets in the issue tracker over its
// REST API. One run may open at most one ticket per undeliverable
// recipient plus one generic ticket for a failed dispatch pass.
package tickets

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

const createPath = "/rest/api/issue"

//go:generate mockgen -destination=../mocks/ticketsmock/tickets.go -package=ticketsmock . TicketsLogic
type TicketsLogic interface {
	CreateTicket(ctx context.Context, params CreateTicketParams) (string, error)
}

type CreateTicketParams struct {
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"-"`
}

// Client talks to the issue tracker's create-issue endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		token:   token,
	}
}

type createRequest struct {
	Title       string              `json:"title"`
	Body        string              `json:"body"`
	Attachments []attachmentPayload `json:"attachments,omitempty"`
}

type attachmentPayload struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

type createResponse struct {
	Key string `json:"key"`
}

// CreateTicket opens one ticket and returns its key. An idempotency key
// guards against double-created tickets on ambiguous transport failures.
func (c *Client) CreateTicket(ctx context.Context, params CreateTicketParams) (string, error) {
	payload := createRequest{
		Title: params.Title,
		Body:  params.Body,
	}
	for _, a := range params.Attachments {
		payload.Attachments = append(payload.Attachments, attachmentPayload{
			FileName: a.FileName,
			Content:  base64.StdEncoding.EncodeToString(a.Data),
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", apperr.NewInternalError(fmt.Errorf("json.Marshal: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(raw))
	if err != nil {
		return "", apperr.NewInternalError(fmt.Errorf("http.NewRequestWithContext: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", NewCreateTicketError(fmt.Errorf("c.http.Do: %w", err))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return "", NewCreateTicketError(fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", NewCreateTicketError(fmt.Errorf("json.Unmarshal: %w", err))
	}
	if created.Key == "" {
		return "", NewCreateTicketError(fmt.Errorf("response missing ticket key"))
	}
	return created.Key, nil
}
