package utils

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBrevoApiURL = "https://api.brevo.com/v3/smtp/email"

// MailerConfig holds the transactional-email provider settings. Passed in at
// construction time instead of read from the global config.
type MailerConfig struct {
	ApiKey      string
	ApiURL      string
	SenderEmail string
	SenderName  string
	Timeout     time.Duration
}

// Mailer sends email through the Brevo HTTP API. Every send is best-effort:
// failures come back as a (false, diagnostic) pair and never as a panic or an
// error escaping the Send boundary.
type Mailer struct {
	cfg    MailerConfig
	client *resty.Client
}

type brevoContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HtmlContent string         `json:"htmlContent"`
}

// NewMailer creates a Mailer with the given provider settings
func NewMailer(cfg MailerConfig) *Mailer {
	if cfg.ApiURL == "" {
		cfg.ApiURL = defaultBrevoApiURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resty.New().SetTimeout(cfg.Timeout)

	return &Mailer{cfg: cfg, client: client}
}

// Send performs one outbound call to the Brevo API and reports the outcome
func (m *Mailer) Send(toEmail, subject, htmlBody, toName string) (bool, string) {
	if m.cfg.ApiKey == "" {
		return false, "Email service not configured"
	}

	if toName == "" {
		toName = "User"
	}

	payload := brevoPayload{
		Sender:      brevoContact{Name: m.cfg.SenderName, Email: m.cfg.SenderEmail},
		To:          []brevoContact{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HtmlContent: htmlBody,
	}

	resp, err := m.client.R().
		SetHeader("accept", "application/json").
		SetHeader("api-key", m.cfg.ApiKey).
		SetHeader("content-type", "application/json").
		SetBody(payload).
		Post(m.cfg.ApiURL)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return false, "Email service timeout"
		}
		return false, fmt.Sprintf("Email error: %v", err)
	}

	if resp.StatusCode() == 200 || resp.StatusCode() == 201 {
		return true, "Email sent successfully"
	}

	return false, fmt.Sprintf("Brevo API error: %d - %s", resp.StatusCode(), resp.String())
}

// SendOTPEmail sends the password-reset OTP email
func (m *Mailer) SendOTPEmail(toEmail, otp, name string) (bool, string) {
	if name == "" {
		name = "User"
	}

	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>You requested to reset your password for your Jodhpur Boys PG account.</p>
		<p>Your One-Time Password (OTP) is:</p>
		<div class="otp-box">
			<div class="otp-code">%s</div>
		</div>
		<p><strong>This OTP is valid for 10 minutes.</strong></p>
		<p>If you didn't request this password reset, please ignore this email or contact support if you have concerns.</p>
		<p>Best regards,<br>Jodhpur Boys PG Team</p>
	`, name, otp)

	return m.Send(toEmail, "Password Reset OTP - Jodhpur Boys PG", getEmailTemplate("Jodhpur Boys PG", body), name)
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
			.container { max-width: 600px; margin: 0 auto; padding: 20px; }
			.header { background: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
			.content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
			.otp-box { background: white; border: 2px solid #2563eb; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px; }
			.otp-code { font-size: 36px; font-weight: bold; color: #2563eb; letter-spacing: 8px; }
			.info-box { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
			.footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				<p>This is an automated email. Please do not reply.</p>
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
