package mail

import (
	"context"
	"errors"
	"fmt"

	"voiceorder-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrMissingRecipient = errors.New("email recipient is required")

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendEmail sends an HTML email from the configured sender and returns the provider's message id.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", ErrMissingRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent")
	return res.Id, nil
}
