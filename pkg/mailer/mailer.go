package mailer

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
)

// Mailer sends transactional mail. The SMTP implementation blocks for the
// duration of the send, matching the request-scoped call sites.
type Mailer interface {
	Send(to, subject, body string) error
	SendWithAttachment(to, subject, body, attachmentPath string) error
}

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) addr() string {
	return fmt.Sprintf("%s:%d", m.host, m.port)
}

func (m *SMTPMailer) auth() smtp.Auth {
	if m.username == "" {
		return nil
	}
	return smtp.PlainAuth("", m.username, m.password, m.host)
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr(), m.auth(), m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) SendWithAttachment(to, subject, body, attachmentPath string) error {
	content, err := os.ReadFile(attachmentPath)
	if err != nil {
		return fmt.Errorf("failed to read attachment: %w", err)
	}

	boundary := "shop-backend-mail-boundary"
	var sb strings.Builder
	sb.WriteString("From: " + m.from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: multipart/mixed; boundary=" + boundary + "\r\n\r\n")

	sb.WriteString("--" + boundary + "\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(body + "\r\n\r\n")

	sb.WriteString("--" + boundary + "\r\n")
	sb.WriteString("Content-Type: application/pdf\r\n")
	sb.WriteString("Content-Transfer-Encoding: base64\r\n")
	sb.WriteString("Content-Disposition: attachment; filename=\"" + filepath.Base(attachmentPath) + "\"\r\n\r\n")

	encoded := base64.StdEncoding.EncodeToString(content)
	// RFC 2045 line-length limit.
	for len(encoded) > 76 {
		sb.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	sb.WriteString(encoded + "\r\n")
	sb.WriteString("--" + boundary + "--\r\n")

	if err := smtp.SendMail(m.addr(), m.auth(), m.from, []string{to}, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to send email with attachment: %w", err)
	}
	return nil
}
