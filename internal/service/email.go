package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"wegorent-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendReturnReminder(ctx context.Context, toEmail, toName, vehicleName string, endDate time.Time) error {
	subject := fmt.Sprintf("Rental return due: %s", vehicleName)
	body := fmt.Sprintf("Hello %s,\n\nThe rental of %s is due back on %s.\n\nBest regards,\nThe WegoRent Team",
		toName, vehicleName, endDate.Format("2006-01-02 15:04"))
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendInsuranceExpiryReminder(ctx context.Context, toEmail, toName, vehicleName string, insuranceEnd time.Time) error {
	subject := fmt.Sprintf("Insurance expiring soon: %s", vehicleName)
	body := fmt.Sprintf("Hello %s,\n\nThe insurance of %s expires on %s. Please renew it before the expiry date.\n\nBest regards,\nThe WegoRent Team",
		toName, vehicleName, insuranceEnd.Format("2006-01-02"))
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendRoadTaxNotice(ctx context.Context, toEmail, toName, vehicleName string, year int) error {
	subject := fmt.Sprintf("Road tax due for %d: %s", year, vehicleName)
	body := fmt.Sprintf("Hello %s,\n\nThe road tax of %s for %d is not marked as paid.\n\nBest regards,\nThe WegoRent Team",
		toName, vehicleName, year)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) SendTransferConfirmation(ctx context.Context, toEmail, toName, vehicleTitle string, pickupTime time.Time, price float64) error {
	subject := "Your transfer booking is confirmed"
	body := fmt.Sprintf("Hello %s,\n\nYour transfer with %s is confirmed for %s. Total price: %.2f.\n\nBest regards,\nThe WegoRent Team",
		toName, vehicleTitle, pickupTime.Format("2006-01-02 15:04"), price)
	return s.send(toEmail, toName, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
