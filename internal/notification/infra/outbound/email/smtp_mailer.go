package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/smtp"

	"github.com/google/uuid"

	"github.com/davicafu/bizreg/internal/notification/domain"
	sharedEvents "github.com/davicafu/bizreg/internal/shared/events"
)

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     string
	Username string // empty disables AUTH
	Password string
	From     string
}

// SMTPMailer sends the welcome email over plain SMTP.
type SMTPMailer struct {
	cfg Config
}

// Verificación estática
var _ domain.WelcomeMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome to Our Platform!</h2>
  <p>Dear {{.BusinessName}},</p>

  <p>Thank you for registering your business with us. We're excited to have you on board!</p>

  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h3 style="color: #555; margin-top: 0;">Registration Details:</h3>
    <p><strong>Business ID:</strong> {{.BusinessID}}</p>
    <p><strong>Business Name:</strong> {{.BusinessName}}</p>
    <p><strong>Business Type:</strong> {{.BusinessType}}</p>
    <p><strong>Registration Date:</strong> {{.RegistrationDate.Format "2006-01-02"}}</p>
  </div>

  <p>Our team will review your registration and get back to you within 2-3 business days.</p>

  <p>If you have any questions, please don't hesitate to contact us.</p>

  <p>Best regards,<br>Our Platform Team</p>
</div>
`))

// Send delivers the welcome email and returns the generated Message-ID.
// net/smtp has no context support, so the blocking call runs in a goroutine
// and the context deadline abandons it.
func (m *SMTPMailer) Send(ctx context.Context, reg *sharedEvents.BusinessRegisteredEvent) (string, error) {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, reg); err != nil {
		return "", fmt.Errorf("render welcome email: %w", err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)
	subject := fmt.Sprintf("Welcome to Our Platform - %s", reg.BusinessName)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", reg.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(m.addr(), m.auth(), m.cfg.From, []string{reg.Email}, msg.Bytes())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return "", fmt.Errorf("smtp send: %w", err)
		}
		return messageID, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Verify dials the SMTP server and quits. Advisory: callers decide whether
// a failure is fatal.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", m.addr())
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	return client.Quit()
}

func (m *SMTPMailer) addr() string {
	return net.JoinHostPort(m.cfg.Host, m.cfg.Port)
}

func (m *SMTPMailer) auth() smtp.Auth {
	if m.cfg.Username == "" {
		return nil
	}
	return smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
}
