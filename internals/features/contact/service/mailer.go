package service

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"folio_backend/internals/configs"
	"folio_backend/internals/features/contact/model"
)

// Mailer delivers contact-form submissions by email. It is an opaque
// external collaborator: configured from env, skipped when absent.
type Mailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewMailerFromEnv() *Mailer {
	port, _ := strconv.Atoi(configs.GetEnv("SMTP_PORT", "587"))
	return &Mailer{
		host: configs.GetEnv("SMTP_HOST"),
		port: port,
		user: configs.GetEnv("SMTP_USER"),
		pass: configs.GetEnv("SMTP_PASSWORD"),
		to:   configs.GetEnv("CONTACT_MAIL_TO"),
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.to != ""
}

// SendContactMessage forwards a stored message to the site owner.
// Failures are the caller's concern to log, never to surface: the row
// is already persisted by the time this runs.
func (m *Mailer) SendContactMessage(msg *model.ContactMessageModel) error {
	if !m.Enabled() {
		return nil
	}

	phone := ""
	if msg.ContactMessagePhone != nil {
		phone = *msg.ContactMessagePhone
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.user)
	mail.SetHeader("To", m.to)
	mail.SetHeader("Reply-To", msg.ContactMessageEmail)
	mail.SetHeader("Subject", fmt.Sprintf("[Portfolio] %s", msg.ContactMessageSubject))
	mail.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		msg.ContactMessageName, msg.ContactMessageEmail, phone, msg.ContactMessageBody,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(mail); err != nil {
		log.Printf("[ERROR] contact mail delivery failed: %v", err)
		return err
	}
	return nil
}
