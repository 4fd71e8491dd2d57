// Package email delivers generated resumes to the user's inbox as a PDF
// attachment over SMTP.
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// Config holds SMTP delivery settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Addr returns the host:port dial address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Sender delivers a resume email with a PDF attachment.
type Sender interface {
	Send(to, subject, body string, pdf []byte) error
}

// SMTPSender implements Sender over net/smtp with PLAIN auth.
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender creates a sender for the given SMTP configuration.
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send builds a multipart MIME message with a text body and the PDF attached
// as resume.pdf, and submits it to the configured SMTP server.
func (s *SMTPSender) Send(to, subject, body string, pdf []byte) error {
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	msg, err := buildMessage(s.cfg.From, to, subject, body, pdf)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(s.cfg.Addr(), auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string, pdf []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build message body: %w", err)
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, fmt.Errorf("failed to write message body: %w", err)
	}

	if len(pdf) > 0 {
		pdfPart, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {"application/pdf"},
			"Content-Disposition":       {`attachment; filename="resume.pdf"`},
			"Content-Transfer-Encoding": {"base64"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build attachment: %w", err)
		}
		if err := writeBase64Lines(pdfPart, pdf); err != nil {
			return nil, fmt.Errorf("failed to write attachment: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize message: %w", err)
	}
	return buf.Bytes(), nil
}

// writeBase64Lines encodes data in 76-character lines per RFC 2045.
func writeBase64Lines(w interface{ Write([]byte) (int, error) }, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := min(76, len(encoded))
		if _, err := w.Write([]byte(encoded[:n] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}

// NopSender discards messages; used when SMTP is not configured so the rest
// of the pipeline still works in development.
type NopSender struct{}

// Send implements Sender by doing nothing.
func (NopSender) Send(to, subject, body string, pdf []byte) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient address is required")
	}
	return nil
}
