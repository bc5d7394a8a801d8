package email

import (
	"fmt"
	"html"
)

// ContactNotificationHTML returns the HTML body for the owner notification
// sent after a contact-form submission.
func ContactNotificationHTML(name, fromEmail, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:24px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#1a1a2e;">
  <h1 style="font-size:20px;margin:0 0 16px;">Name: %s</h1>
  <p style="margin:0 0 8px;font-size:15px;">Email: %s</p>
  <p style="margin:0 0 16px;font-size:15px;line-height:1.6;">Message: %s</p>
  <hr style="border:none;border-top:1px solid #eeeef2;">
</body>
</html>`, html.EscapeString(name), html.EscapeString(fromEmail), html.EscapeString(message))
}

// ContactNotificationText returns the plain-text body for the owner
// notification sent after a contact-form submission.
func ContactNotificationText(name, fromEmail, message string) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n", name, fromEmail, message)
}

// MeetingConfirmationHTML returns the HTML body for a meeting-date
// notification to the site owner.
func MeetingConfirmationHTML(date, requesterEmail string) string {
	return fmt.Sprintf(`<p style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;font-size:15px;">%s is selected for meeting by %s.</p>`,
		html.EscapeString(date), html.EscapeString(requesterEmail))
}

// MeetingConfirmationText returns the plain-text body for a meeting-date
// notification.
func MeetingConfirmationText(date, requesterEmail string) string {
	return fmt.Sprintf("%s is selected for meeting by %s.\n", date, requesterEmail)
}

// BroadcastHTML wraps broadcast content with an unsubscribe link. The
// description is author-supplied HTML and is embedded as-is.
func BroadcastHTML(description, unsubscribeURL string) string {
	return fmt.Sprintf(`<p>%s</p><a href="%s/unsubscribe">Unsubscribe</a>`,
		description, html.EscapeString(unsubscribeURL))
}

// BroadcastText returns the plain-text fallback for a broadcast message.
func BroadcastText(description, unsubscribeURL string) string {
	return fmt.Sprintf("%s\n\nUnsubscribe: %s/unsubscribe\n", description, unsubscribeURL)
}
