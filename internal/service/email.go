package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name, itemList, pickupDate, pickupTime string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Pickup reminder for your reserved items")

	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your reserved items are ready for pickup on %s", name, pickupDate)
	if pickupTime != "" {
		body += fmt.Sprintf(" at %s", pickupTime)
	}
	body += fmt.Sprintf(".\n\nReserved items:\n%s\n\nSee you soon!", itemList)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send pickup reminder: %w", err)
	}
	return nil
}

func (s *emailService) SendReturnOverdueNotice(ctx context.Context, email, name, itemList, returnDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Rental return overdue")

	body := fmt.Sprintf("Hello %s,\n\nThe return date %s for the following items has passed:\n%s\n\nPlease return them as soon as possible.", name, returnDate, itemList)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue notice: %w", err)
	}
	return nil
}
