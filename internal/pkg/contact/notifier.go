package contact

import (
	"context"
	"fmt"
	"strings"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Mailer delivers a plain text message.
type Mailer interface {
	SendMail(to, replyTo, subject, body string) error
}

// MailNotifier forwards inquiries to the agency inbox.
func MailNotifier(mailer Mailer, recipient string) Notifier {
	return NotifierFunc(func(_ context.Context, inquiry Inquiry) error {
		subject := "[Contact] " + inquiry.Subject
		if err := mailer.SendMail(recipient, inquiry.Email, subject, formatBody(inquiry)); err != nil {
			return fmt.Errorf("forward inquiry: %w", err)
		}
		return nil
	})
}

// LogNotifier only logs that an inquiry arrived. Contact details are left out
// of the log.
func LogNotifier() Notifier {
	return NotifierFunc(func(_ context.Context, inquiry Inquiry) error {
		fiberlog.Infof("Contact inquiry received: subject=%q", inquiry.Subject)
		return nil
	})
}

func formatBody(inquiry Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&b, "Email: %s\n", inquiry.Email)
	if inquiry.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", inquiry.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", inquiry.Subject)
	b.WriteString(inquiry.Message)
	b.WriteString("\n")
	return b.String()
}
