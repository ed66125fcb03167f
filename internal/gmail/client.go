package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"workspacemcp/internal/google"
)

// Client wraps the Gmail Users service
type Client struct {
	svc     *gmail.UsersService
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:     svc.Users,
		account: account,
	}, nil
}

// SearchMessages searches for messages matching a Gmail query and returns
// compact summaries (id, subject, from, date) for each hit
func (c *Client) SearchMessages(ctx context.Context, query string, maxResults int64) ([]*MessageSummary, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	call := c.svc.Messages.List("me").Context(ctx).Q(query)
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	summaries := make([]*MessageSummary, 0, len(res.Messages))
	for _, m := range res.Messages {
		msg, err := c.svc.Messages.Get("me", m.Id).
			Context(ctx).
			Format("metadata").
			MetadataHeaders("Subject", "From", "Date").
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", m.Id, err)
		}

		summaries = append(summaries, &MessageSummary{
			ID:      msg.Id,
			Subject: headerValue(msg.Payload, "Subject"),
			From:    headerValue(msg.Payload, "From"),
			Date:    headerValue(msg.Payload, "Date"),
		})
	}

	return summaries, nil
}

// GetMessage retrieves a single message including its decoded plain-text body
func (c *Client) GetMessage(ctx context.Context, messageID string) (*MessageDetails, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}

	msg, err := c.svc.Messages.Get("me", messageID).
		Context(ctx).
		Format("full").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	return &MessageDetails{
		ID:      msg.Id,
		Subject: headerValue(msg.Payload, "Subject"),
		From:    headerValue(msg.Payload, "From"),
		To:      headerValue(msg.Payload, "To"),
		Date:    headerValue(msg.Payload, "Date"),
		Body:    extractBody(msg.Payload),
	}, nil
}

// headerValue returns the value of a named header from a message payload.
// Header name matching is case-insensitive.
func headerValue(payload *gmail.MessagePart, name string) string {
	if payload == nil {
		return ""
	}
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// extractBody returns the decoded plain-text body of a message. For
// multipart messages it prefers a text/plain part, falling back to
// text/html, searching parts recursively.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if payload.Body != nil && payload.Body.Data != "" {
		if decoded, err := decodeBody(payload.Body.Data); err == nil {
			return decoded
		}
	}

	if body := findPartBody(payload.Parts, "text/plain"); body != "" {
		return body
	}
	return findPartBody(payload.Parts, "text/html")
}

func findPartBody(parts []*gmail.MessagePart, mimeType string) string {
	for _, part := range parts {
		if part == nil {
			continue
		}
		if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
			if decoded, err := decodeBody(part.Body.Data); err == nil {
				return decoded
			}
		}
		if body := findPartBody(part.Parts, mimeType); body != "" {
			return body
		}
	}
	return ""
}

// decodeBody decodes Gmail's base64url-encoded body data, with or without
// padding.
func decodeBody(data string) (string, error) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode message body: %w", err)
		}
	}
	return string(decoded), nil
}
