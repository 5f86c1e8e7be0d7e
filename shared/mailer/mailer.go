// Package mailer sends transactional email over SMTP. The auth services see
// it through their own Mailer interface, so tests never touch the network.
package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"sitegate-backend/shared/config"
)

const dialTimeout = 30 * time.Second

type EmailService struct {
	config *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{config: cfg}
}

type EmailData struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

func (e *EmailService) SendEmail(emailData EmailData) error {
	addr := fmt.Sprintf("%s:%s", e.config.SMTPHost, e.config.SMTPPort)
	dialer := &net.Dialer{Timeout: dialTimeout}

	var client *smtp.Client
	var err error

	if e.config.SMTPPort == "465" {
		tlsConfig := &tls.Config{
			ServerName: e.config.SMTPHost,
		}

		conn, dialErr := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
		if dialErr != nil {
			return dialErr
		}
		client, err = smtp.NewClient(conn, e.config.SMTPHost)
		if err != nil {
			return err
		}
	} else {
		conn, dialErr := dialer.Dial("tcp", addr)
		if dialErr != nil {
			return dialErr
		}
		client, err = smtp.NewClient(conn, e.config.SMTPHost)
		if err != nil {
			return err
		}

		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{ServerName: e.config.SMTPHost}
			if err = client.StartTLS(tlsConfig); err != nil {
				// Non-critical error, continue without TLS
			}
		}
	}
	defer client.Close()

	if e.config.SMTPUsername != "" {
		auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return err
		}
	}

	if err = client.Mail(e.config.EmailFrom); err != nil {
		return err
	}

	if err = client.Rcpt(emailData.To); err != nil {
		return err
	}

	var contentType string
	if emailData.IsHTML {
		contentType = "text/html; charset=UTF-8"
	} else {
		contentType = "text/plain; charset=UTF-8"
	}

	message := fmt.Sprintf("To: %s\r\n"+
		"From: %s <%s>\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n",
		emailData.To,
		e.config.EmailFromName,
		e.config.EmailFrom,
		emailData.Subject,
		contentType,
		emailData.Body)

	w, err := client.Data()
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(message))
	if err != nil {
		return err
	}

	err = w.Close()
	if err != nil {
		return err
	}

	client.Quit()

	return nil
}

// SendPasswordResetEmail sends the reset link to the account's address.
// If the HTML variant fails to send, it retries once with plain text.
func (e *EmailService) SendPasswordResetEmail(toEmail, username, resetURL string) error {
	htmlTemplate := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset - SiteGate</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
        <h1 style="color: #343a40; text-align: center;">Password Reset Request</h1>

        <p style="color: #6c757d; font-size: 16px;">Hello {{.Username}},</p>

        <p style="color: #6c757d; font-size: 16px;">
            We received a request to reset your account password. To proceed with the password reset,
            please click the button below:
        </p>

        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.ResetURL}}"
               style="background-color: #007bff; color: white; padding: 12px 30px; text-decoration: none;
                      border-radius: 5px; font-weight: bold; display: inline-block;">
                Reset My Password
            </a>
        </div>

        <p style="color: #6c757d; font-size: 14px;">
            If the button doesn't work, copy and paste this link into your browser:
        </p>

        <p style="color: #007bff; font-size: 14px; word-break: break-all;">
            {{.ResetURL}}
        </p>

        <hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">

        <p style="color: #dc3545; font-size: 14px;">
            <strong>Important:</strong> This password reset link will expire in 1 hour. If you didn't request a
            password reset, please ignore this email.
        </p>

        <p style="color: #6c757d; font-size: 12px; text-align: center;">
            Best regards,<br>
            The SiteGate Team
        </p>
    </div>
</body>
</html>`

	textTemplate := `
Password Reset Request - SiteGate

Hello {{.Username}},

You have requested to reset your password. Visit the link below to reset your password:

{{.ResetURL}}

This link will expire in 1 hour. If you didn't request a password reset, please ignore this email.

Best regards,
The SiteGate Team
`

	templateData := struct {
		Username string
		ResetURL string
	}{
		Username: username,
		ResetURL: resetURL,
	}

	tmpl, err := template.New("password_reset").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse password reset template: %w", err)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, templateData); err != nil {
		return fmt.Errorf("failed to execute password reset template: %w", err)
	}

	emailData := EmailData{
		To:      toEmail,
		Subject: "Password Reset Request - SiteGate",
		Body:    htmlBody.String(),
		IsHTML:  true,
	}

	if err := e.SendEmail(emailData); err != nil {
		textTmpl, _ := template.New("password_reset_text").Parse(textTemplate)
		var textBody bytes.Buffer
		textTmpl.Execute(&textBody, templateData)

		emailData.Body = textBody.String()
		emailData.IsHTML = false

		return e.SendEmail(emailData)
	}

	return nil
}
