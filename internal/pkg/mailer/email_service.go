package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type OrderLine struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

type IEmailService interface {
	SendOrderConfirmation(toEmail, fullName, orderId string, lines []OrderLine, total float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail, fullName, orderId string, lines []OrderLine, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Order Confirmation")

	var rows strings.Builder
	for _, line := range lines {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 4px 12px;">%s</td><td style="padding: 4px 12px;">%d</td><td style="padding: 4px 12px;">%.2f</td></tr>`,
			line.Title, line.Quantity, line.UnitPrice,
		))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you for your order, %s!</h2>
			<p>Order reference: <strong>%s</strong></p>
			<table style="border-collapse: collapse;">
				<tr><th style="padding: 4px 12px; text-align: left;">Book</th><th style="padding: 4px 12px;">Qty</th><th style="padding: 4px 12px;">Price</th></tr>
				%s
			</table>
			<p>Total: <strong>%.2f</strong></p>
			<p>You can follow your order at <a href="%s/orders">%s/orders</a>.</p>
		</div>
	`, fullName, orderId, rows.String(), total, s.clientURL, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send order confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Order confirmation sent to %s\n", toEmail)
	return nil
}
