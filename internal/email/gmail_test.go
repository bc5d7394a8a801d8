package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// headerBlock returns the header section of an assembled message, i.e.
// everything before the first blank line.
func headerBlock(t *testing.T, raw string) string {
	t.Helper()
	idx := strings.Index(raw, "\r\n\r\n")
	require.Greater(t, idx, 0, "message has no header/body separator")
	return raw[:idx]
}

func TestBuildMIME(t *testing.T) {
	t.Parallel()

	t.Run("multipart carries both bodies", func(t *testing.T) {
		t.Parallel()
		raw := buildMIME("Growwitup Agency <owner@growwitup.com>", Message{
			To:       "sub@x.com",
			Subject:  "Hello",
			HTMLBody: "<p>hi</p>",
			TextBody: "hi",
		})

		headers := headerBlock(t, raw)
		require.Contains(t, headers, "From: Growwitup Agency <owner@growwitup.com>")
		require.Contains(t, headers, "To: sub@x.com")
		require.Contains(t, headers, "Subject: Hello")
		require.Contains(t, headers, "multipart/alternative")
		require.Contains(t, raw, "<p>hi</p>")
		require.Contains(t, raw, "\r\nhi\r\n")
	})

	t.Run("newlines in the subject cannot add headers", func(t *testing.T) {
		t.Parallel()
		raw := buildMIME("owner@growwitup.com", Message{
			To:       "owner@growwitup.com",
			Subject:  "Eve\r\nBcc: victim@example.com\r\nX-Injected: 1 Want to Contact.",
			TextBody: "hello",
		})

		headers := headerBlock(t, raw)
		for _, line := range strings.Split(headers, "\r\n") {
			require.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
			require.False(t, strings.HasPrefix(line, "X-Injected:"), "injected header line: %q", line)
		}
		require.Contains(t, headers, "Subject: Eve Bcc: victim@example.com X-Injected: 1 Want to Contact.")
	})

	t.Run("newlines in the recipient cannot add headers", func(t *testing.T) {
		t.Parallel()
		raw := buildMIME("owner@growwitup.com", Message{
			To:       "a@x.com\nBcc: victim@example.com",
			Subject:  "Hello",
			HTMLBody: "<p>hi</p>",
		})

		headers := headerBlock(t, raw)
		for _, line := range strings.Split(headers, "\r\n") {
			require.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
		}
	})
}
