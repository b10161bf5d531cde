package sms

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// Client sends SMS messages through the relay service. The relay exposes a
// single JSON endpoint and authenticates with a static API key.
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(relayURL, apiKey string) *Client {
	httpClient := resty.New().SetBaseURL(relayURL)

	return &Client{
		http:   httpClient,
		apiKey: apiKey,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send delivers one message to one Vietnamese phone number.
func (c *Client) Send(ctx context.Context, phone, message string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetBody(sendMessageRequest{
			Phone:   phone,
			Message: message,
		}).
		Post("/v1/messages")
	if err != nil {
		return fmt.Errorf("failed to call sms relay: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("sms relay returned %s: %s", resp.Status(), resp.String())
	}

	return nil
}
