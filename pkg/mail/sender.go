package mail

import (
	"fmt"

	gomail "gopkg.in/mail.v2"
)

type Sender interface {
	SendMail(to []string, subject string, htmlBody string, textBody string) error
}

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject string, htmlBody string, textBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.AddAlternative("text/plain", textBody)
	}
	if htmlBody != "" {
		m.SetBody("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: gomail.NewDialer(host, port, email, password),
	}
}
