package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendVerificationEmail(toEmail, toName, link string) error
	SendPasswordResetEmail(toEmail, toName, link string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendVerificationEmail sends an email with a verification link. When SMTP
// credentials are not configured the link is only logged, so registration
// keeps working in development.
func (s *EmailServiceImpl) SendVerificationEmail(toEmail, toName, link string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("verificationURL", link).
			Msg("SMTP credentials not configured - verification email not sent")
		return nil
	}

	subject := "Verify your email address - Sanad"
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Please verify your email address by following this link:</p>
			<p><a href="%s">Verify email</a></p>
			<p>The link expires in 24 hours.</p>
		</body>
		</html>`, toName, link)

	return s.send(toEmail, subject, body)
}

// SendPasswordResetEmail sends an email with a password reset link.
func (s *EmailServiceImpl) SendPasswordResetEmail(toEmail, toName, link string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("resetURL", link).
			Msg("SMTP credentials not configured - password reset email not sent")
		return nil
	}

	subject := "Password reset - Sanad"
	body := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello %s,</p>
			<p>A password reset was requested for your account. Follow this link to choose a new password:</p>
			<p><a href="%s">Reset password</a></p>
			<p>If you did not request this, you can ignore this message.</p>
		</body>
		</html>`, toName, link)

	return s.send(toEmail, subject, body)
}

func (s *EmailServiceImpl) send(toEmail, subject, htmlBody string) error {
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	msg := []byte("From: " + s.config.FromName + " <" + s.config.FromEmail + ">\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
