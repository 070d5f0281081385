package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SMTPMailer sends mail through a STARTTLS SMTP relay. The From address
// doubles as the default recipient for admin notifications.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
	timeout  time.Duration
	log      zerolog.Logger
}

func NewSMTPMailer(host string, port int, from, password string, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		timeout:  30 * time.Second,
		log:      log,
	}
}

// Send delivers a plain-text message. Failures are logged here so callers
// can stay fire-and-forget.
func (m *SMTPMailer) Send(ctx context.Context, subject, body, recipient string) error {
	if recipient == "" {
		recipient = m.from
	}

	if err := m.send(ctx, subject, body, recipient); err != nil {
		m.log.Error().Err(err).Str("recipient", recipient).Str("subject", subject).Msg("email send failed")
		return err
	}
	return nil
}

func (m *SMTPMailer) send(ctx context.Context, subject, body, recipient string) error {
	msg := m.buildMessage(subject, body, recipient)

	timeout := m.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(timeout))

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(recipient); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *SMTPMailer) buildMessage(subject, body, recipient string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")
	return msg.String()
}
