package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig holds the configuration for the Gmail email sender.
type GmailConfig struct {
	// ClientID / ClientSecret / RedirectURL identify the OAuth2 client.
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// RefreshToken is the long-lived credential for the sender mailbox.
	RefreshToken string
	// SenderAddress is the email address emails are sent from.
	SenderAddress string
	// SenderName is the display name for the sender.
	SenderName string
}

// GmailSender implements Sender using the Gmail API.
type GmailSender struct {
	service       *gmail.Service
	senderAddress string
	senderName    string
}

// NewGmailSender creates a GmailSender using OAuth2 client credentials plus
// a refresh token for the sender mailbox. The underlying oauth2 transport
// exchanges the refresh token for an access token on first use.
func NewGmailSender(ctx context.Context, cfg GmailConfig) (*GmailSender, error) {
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}
	if cfg.RefreshToken == "" {
		return nil, fmt.Errorf("gmail: refresh token is required")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	}

	client := oauthCfg.Client(ctx, token)

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{
		service:       svc,
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
	}, nil
}

// NewGmailFactory returns a Factory producing a fresh GmailSender per send
// session.
func NewGmailFactory(cfg GmailConfig) Factory {
	return func(ctx context.Context) (Sender, error) {
		return NewGmailSender(ctx, cfg)
	}
}

// headerValue strips CR and LF from a header value. Subjects and addresses
// can carry request-supplied text; a bare newline there would terminate the
// header and let the rest of the value inject additional headers.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// buildMIME assembles the raw RFC 2822 message. Header values are
// sanitized; bodies are carried as-is.
func buildMIME(from string, msg Message) string {
	headers := []string{
		"From: " + headerValue(from),
		"To: " + headerValue(msg.To),
		"Subject: " + headerValue(msg.Subject),
		"MIME-Version: 1.0",
	}

	if msg.HTMLBody != "" && msg.TextBody != "" {
		// Multipart alternative (HTML + text)
		boundary := "boundary_growwitup_email"
		return strings.Join(append(headers,
			"Content-Type: multipart/alternative; boundary="+boundary,
			"",
			"--"+boundary,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.TextBody,
			"",
			"--"+boundary,
			"Content-Type: text/html; charset=UTF-8",
			"Content-Transfer-Encoding: 7bit",
			"",
			msg.HTMLBody,
			"",
			"--"+boundary+"--",
		), "\r\n")
	}

	if msg.HTMLBody != "" {
		return strings.Join(append(headers,
			"Content-Type: text/html; charset=UTF-8",
			"",
			msg.HTMLBody,
		), "\r\n")
	}

	return strings.Join(append(headers,
		"Content-Type: text/plain; charset=UTF-8",
		"",
		msg.TextBody,
	), "\r\n")
}

// Send sends an email via the Gmail API.
func (g *GmailSender) Send(ctx context.Context, msg Message) error {
	from := g.senderAddress
	if g.senderName != "" {
		from = fmt.Sprintf("%s <%s>", g.senderName, g.senderAddress)
	}

	gmailMsg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(buildMIME(from, msg))),
	}

	_, err := g.service.Users.Messages.Send("me", gmailMsg).Context(ctx).Do()
	if err != nil {
		return classify(fmt.Errorf("gmail: failed to send email: %w", err))
	}

	return nil
}
