// Package mail sends transactional email over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewSender(host string, port int, sender string, password string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, sender, password),
		sender: sender,
	}
}

type Sender struct {
	dialer *gomail.Dialer
	sender string
}

// Send delivers an HTML email to a single recipient.
func (s *Sender) Send(to string, subject string, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: sending to %s: %w", to, err)
	}
	return nil
}
