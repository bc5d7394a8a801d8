package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Provider error taxonomy. Callers match with errors.Is and map each class
// to its own user-facing message; anything unclassified stays generic.
var (
	// ErrAuthFailure means the provider rejected our sending credentials.
	ErrAuthFailure = errors.New("mail provider rejected the credentials")
	// ErrConnectionFailure means the provider could not be reached.
	ErrConnectionFailure = errors.New("connection to mail provider failed")
	// ErrInvalidRecipient means the provider rejected the recipient address.
	ErrInvalidRecipient = errors.New("recipient address rejected by provider")
)

// classify wraps a raw provider error with the matching taxonomy sentinel.
// OAuth2 token retrieval failures and 401/403 API responses are auth
// failures; a 400 on a send is a rejected recipient; network errors are
// connection failures. Context cancellation and deadline errors pass
// through untouched (they satisfy net.Error but are the caller's budget,
// not the provider's fault), as does everything else unclassified. The
// cause is wrapped, so its identity survives classification.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrAuthFailure, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrAuthFailure, err)
		case http.StatusBadRequest:
			return fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}

	return err
}
