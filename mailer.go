package portfolio

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer forwards contact messages by email over SMTP with PLAIN auth.
type Mailer struct {
	cfg  SMTPConfig
	site string
	send sendFunc
}

// NewMailer creates a Mailer for cfg. site names the sender in subjects.
func NewMailer(cfg SMTPConfig, site string) *Mailer {
	return &Mailer{cfg: cfg, site: site, send: smtp.SendMail}
}

// Deliver sends m to the configured inbox with Reply-To set to the sender.
func (m *Mailer) Deliver(ctx context.Context, msg ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, m.compose(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *Mailer) compose(msg ContactMessage) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from " + msg.Name
	}
	if m.site != "" {
		subject = "[" + m.site + "] " + subject
	}

	var b strings.Builder
	b.WriteString("To: " + m.cfg.To + "\r\n")
	b.WriteString("From: " + m.cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(msg.Email) + "\r\n")
	b.WriteString("Subject: " + headerSafe(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nSent: %s\r\n\r\n", msg.Name, msg.Email, msg.CreatedAt)
	b.WriteString(strings.ReplaceAll(msg.Message, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// headerSafe strips line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
