// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"cryptopress/config"
	"cryptopress/internal/domain/service"
)

// smtpMailer is a concrete implementation of the Mailer interface backed by a
// plain SMTP relay. Auth is skipped when no username is configured, which is
// what local catch-all relays like MailHog expect.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	from := cfg.SMTP.From
	if from == "" {
		from = "no-reply@cryptopress.local"
	}

	return &smtpMailer{
		addr: net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(cfg.SMTP.Port)),
		auth: auth,
		from: from,
	}, nil
}

// SendWelcome sends the post-registration welcome message. The context only
// bounds the call; net/smtp has no native cancellation, so an expired context
// fails fast before dialing.
func (m *smtpMailer) SendWelcome(ctx context.Context, to string, username string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send welcome aborted")
	}

	msg := buildWelcomeMessage(m.from, to, username)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "failed to send welcome mail to %s", to)
	}

	return nil
}

func buildWelcomeMessage(from, to, username string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Welcome to CryptoPress\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", username)
	b.WriteString("Your account has been created. You can now sign in with your email and password.\r\n")

	return []byte(b.String())
}
