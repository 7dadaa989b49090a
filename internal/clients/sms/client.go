// Package sms sends text messages through Twilio.
package sms

import (
	"context"
	"errors"
	"fmt"

	"voiceorder-server/internal/observability"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingRecipient = errors.New("sms recipient is required")

type TwilioClient struct {
	client *twilio.RestClient
	from   string
	logger *observability.Logger
}

func NewTwilioClient(accountSID, authToken, from string, logger *observability.Logger) *TwilioClient {
	return &TwilioClient{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from:   from,
		logger: logger,
	}
}

// SendSMS sends body to the E.164 number to and returns the message SID.
// The Twilio client has no context support; ctx only carries log fields.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	if to == "" {
		return "", ErrMissingRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "sms_sid", Value: sid}), "sms sent")
	return sid, nil
}
