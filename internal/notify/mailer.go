package notify

import (
	"fmt"

	"tmsiti/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers account emails. Implementations must be safe for concurrent
// use; the services call them from request goroutines.
type Mailer interface {
	SendVerificationCode(to, fullName, code string) error
	SendPasswordReset(to, fullName, resetLink string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     from,
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, "TMSITI"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)

	return d.DialAndSend(msg)
}

// SendVerificationCode mails the six-digit registration code.
func (m *SMTPMailer) SendVerificationCode(to, fullName, code string) error {
	subject := "TMSITI - Email manzilni tasdiqlash"
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333333;">
	<p>Hurmatli %s,</p>
	<p>Ro&#39;yxatdan o&#39;tishni yakunlash uchun quyidagi tasdiqlash kodini kiriting:</p>
	<p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">%s</p>
	<p>Kod 10 daqiqa davomida amal qiladi.</p>
	<p>Agar bu so&#39;rovni siz yubormagan bo&#39;lsangiz, xatni e&#39;tiborsiz qoldiring.</p>
	<p>Hurmat bilan,<br/>TMSITI</p>
</body>
</html>`, fullName, code)

	return m.send(to, subject, body)
}

// SendPasswordReset mails the single-use password reset link.
func (m *SMTPMailer) SendPasswordReset(to, fullName, resetLink string) error {
	subject := "TMSITI - Parolni tiklash"
	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333333;">
	<p>Hurmatli %s,</p>
	<p>Parolni tiklash uchun quyidagi havolaga o&#39;ting:</p>
	<p><a href="%s">%s</a></p>
	<p>Havola 1 soat davomida amal qiladi va faqat bir marta ishlaydi.</p>
	<p>Agar bu so&#39;rovni siz yubormagan bo&#39;lsangiz, xatni e&#39;tiborsiz qoldiring.</p>
	<p>Hurmat bilan,<br/>TMSITI</p>
</body>
</html>`, fullName, resetLink, resetLink)

	return m.send(to, subject, body)
}
