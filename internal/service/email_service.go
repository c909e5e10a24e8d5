package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"

	"xintern-backend/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
}

type emailService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	if s.cfg.ResendAPIKey == "" {
		log.Printf("RESEND_API_KEY not set, skipping welcome email to %s", toEmail)
		return nil
	}

	html := fmt.Sprintf(`
<p>Hi %s,</p>
<p>Welcome to XIntern. Your account is ready: search companies, read
internship reviews and share your own.</p>
<p>— The XIntern team</p>`, fullName)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("XIntern <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: "Welcome to XIntern",
	}

	_, err := s.client.Emails.Send(params)
	return err
}
