// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

/*
Package mailer delivers transactional email rendered from embedded templates.

Each template file defines three named blocks: "subject", "plainBody" and
"htmlBody". [SMTP] sends them through gopkg.in/mail.v2; [Log] only writes the
rendered subject and plain body to the structured log, which is what local
development uses when no SMTP host is configured.
*/
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"gopkg.in/mail.v2"
)

//go:embed "templates"
var templateFS embed.FS

const (
	dialTimeout  = 5 * time.Second
	sendAttempts = 3
	retryDelay   = 500 * time.Millisecond
)

//go:generate mockgen -destination=mailertest/mock_sender.go -package=mailertest github.com/NavodCaldera/online-bookstore-sub000/internal/platform/mailer Sender

// Sender delivers a rendered template to a single recipient.
type Sender interface {
	Send(ctx context.Context, recipient, templateFile string, data any) error
}

// Message is a rendered email.
type Message struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Render executes the three blocks of templateFile against data.
func Render(templateFile string, data any) (Message, error) {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return Message{}, fmt.Errorf("mailer: parse %s: %w", templateFile, err)
	}

	var msg Message
	for _, block := range []struct {
		name string
		dst  *string
	}{
		{"subject", &msg.Subject},
		{"plainBody", &msg.PlainBody},
		{"htmlBody", &msg.HTMLBody},
	} {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, block.name, data); err != nil {
			return Message{}, fmt.Errorf("mailer: execute %s/%s: %w", templateFile, block.name, err)
		}
		*block.dst = buf.String()
	}

	return msg, nil
}

// # SMTP

// SMTP sends mail through an SMTP relay.
type SMTP struct {
	dialer *mail.Dialer
	sender string
}

// NewSMTP configures a dialer for the given relay. sender is the From header,
// e.g. "PageTurn <no-reply@pageturn.app>".
func NewSMTP(host string, port int, username, password, sender string) *SMTP {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = dialTimeout
	return &SMTP{dialer: dialer, sender: sender}
}

// Send renders templateFile and delivers it, retrying transient failures.
func (m *SMTP) Send(ctx context.Context, recipient, templateFile string, data any) error {
	rendered, err := Render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", rendered.Subject)
	msg.SetBody("text/plain", rendered.PlainBody)
	msg.AddAlternative("text/html", rendered.HTMLBody)

	for attempt := 1; ; attempt++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil || attempt == sendAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	if err != nil {
		return fmt.Errorf("mailer: send after %d attempts: %w", sendAttempts, err)
	}
	return nil
}

// # Logging

// Log writes rendered mail to a logger instead of sending it.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a logging sender.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Send renders templateFile and logs the result.
func (m *Log) Send(ctx context.Context, recipient, templateFile string, data any) error {
	rendered, err := Render(templateFile, data)
	if err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "mail_logged",
		slog.String("to", recipient),
		slog.String("subject", rendered.Subject),
		slog.String("body", rendered.PlainBody),
	)
	return nil
}
