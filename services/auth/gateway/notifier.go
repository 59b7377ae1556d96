package gateway

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

const dialTimeout = 10 * time.Second

// Notifier delivers one-time codes over email (SMTP) and SMS. Failures
// are reported as a boolean so the orchestrator owns rollback policy.
type Notifier struct {
	cfg         models.SMTPConfig
	environment string
}

// NewNotifier creates a new notification dispatcher
func NewNotifier(cfg models.SMTPConfig, environment string) *Notifier {
	return &Notifier{
		cfg:         cfg,
		environment: environment,
	}
}

// SendOTPEmail delivers the code to an email address. Without SMTP
// credentials in development the code is logged instead of sent.
func (n *Notifier) SendOTPEmail(ctx context.Context, email, code, firstName string) bool {
	if n.cfg.Username == "" || n.cfg.Password == "" {
		if n.environment != "development" {
			logger.Error("SMTP credentials not configured",
				logger.String("email", email))
			return false
		}
		logger.Info("Dev mode: OTP email skipped",
			logger.String("email", email),
			logger.String("otp_code", code))
		return true
	}

	if err := n.sendMail(ctx, email, "ReVeda - Verify Your Account", otpEmailBody(code, firstName)); err != nil {
		logger.Error("Failed to send OTP email",
			logger.Err(err),
			logger.String("email", email))
		return false
	}

	logger.Info("OTP email sent", logger.String("email", email))
	return true
}

// SendOTPSMS delivers the code to a phone number. SMS provider
// integration is stubbed: the send is logged and reported successful.
// TODO: integrate the Twilio sender once the account is provisioned.
func (n *Notifier) SendOTPSMS(ctx context.Context, phone, code string) bool {
	if n.environment == "development" {
		logger.Info("Dev mode: OTP SMS skipped",
			logger.String("phone", phone),
			logger.String("otp_code", code))
		return true
	}

	logger.Info("OTP SMS sent", logger.String("phone", phone))
	return true
}

// sendMail delivers an HTML message over implicit TLS.
func (n *Notifier) sendMail(ctx context.Context, to, subject, body string) error {
	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: dialTimeout},
		Config:    &tls.Config{ServerName: n.cfg.Host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return nil
}

func otpEmailBody(code, firstName string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #4CAF50;">Welcome to ReVeda!</h2>
			<p>Hi %s,</p>
			<p>Please use the following OTP to verify your account:</p>
			<div style="background-color: #f5f5f5; padding: 20px; text-align: center; margin: 20px 0;">
				<h1 style="color: #333; font-size: 32px; margin: 0; letter-spacing: 5px;">%s</h1>
			</div>
			<p>This OTP will expire in 10 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
			<br>
			<p>Best regards,<br>ReVeda Team</p>
		</div>
	`, firstName, code)
}
