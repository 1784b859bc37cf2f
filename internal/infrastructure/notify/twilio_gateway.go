package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingTwilioCredentials = errors.New("missing twilio credentials")
var ErrSMSGatewayNotConfigured = errors.New("sms gateway not configured")

// TwilioGateway texts the business owner when a new estimate request lands.
//
// Supported env vars:
//   - TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN
//   - TWILIO_PHONE_NUMBER (sender)
//   - RECIPIENT_PHONE_NUMBER (owner's phone)
//   - SMS_GATEWAY_MOCK (any truthy value skips the provider entirely)

type TwilioGateway struct {
	client    *twilio.RestClient
	from      string
	recipient string
	mockMode  bool
}

var _ interfaces.ISMSGateway = (*TwilioGateway)(nil)

func NewTwilioGateway() (*TwilioGateway, error) {
	recipient := os.Getenv("RECIPIENT_PHONE_NUMBER")

	if isSMSGatewayMockEnabled() {
		log.Printf("[sms][gateway] mock mode enabled")
		return &TwilioGateway{recipient: recipient, mockMode: true}, nil
	}

	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if sid == "" || token == "" || from == "" || recipient == "" {
		log.Printf("[sms][gateway] credentials not configured, SMS notifications disabled")
		return nil, ErrMissingTwilioCredentials
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	log.Printf("[sms][gateway] Twilio client initialized")

	return &TwilioGateway{client: client, from: from, recipient: recipient}, nil
}

// NotifyNewEstimate sends (or, in mock mode, pretends to send) the new-lead
// text and returns what went over the wire for the delivery log.
func (g *TwilioGateway) NotifyNewEstimate(ctx context.Context, e entities.EstimateRequest) (string, string, string, error) {
	body := messageBody(e)

	if g == nil {
		return "", body, "", ErrSMSGatewayNotConfigured
	}

	if g.mockMode {
		sid := fmt.Sprintf("SM%d", time.Now().UTC().UnixNano())
		log.Printf("[sms][gateway] mock send success sid=%s body_len=%d", sid, len(body))
		return g.recipient, body, sid, nil
	}

	if g.client == nil {
		return g.recipient, body, "", ErrSMSGatewayNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(g.recipient)
	params.SetFrom(g.from)
	params.SetBody(body)

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("[sms][gateway] send failed estimate_id=%s err=%v", e.ID, err)
		return g.recipient, body, "", err
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Printf("[sms][gateway] send success estimate_id=%s sid=%s", e.ID, sid)
	return g.recipient, body, sid, nil
}

func messageBody(e entities.EstimateRequest) string {
	contact := ""
	if e.Phone != nil {
		contact = *e.Phone
	} else if e.Email != nil {
		contact = *e.Email
	}
	total := "n/a"
	if e.Quote != nil {
		total = fmt.Sprintf("$%d", e.Quote.Total)
	}
	return fmt.Sprintf("New estimate request from %s (%s): %s, %d rooms / %d baths, quote %s",
		e.FullName, contact, e.ServiceTypeLabel, e.Rooms, e.Bathrooms, total)
}

func isSMSGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SMS_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
