package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sparklean/internal/domain/entities"
)

func TestNewTwilioGateway_MockMode(t *testing.T) {
	t.Setenv("SMS_GATEWAY_MOCK", "true")
	t.Setenv("RECIPIENT_PHONE_NUMBER", "+15550000001")

	g, err := NewTwilioGateway()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	phone := "+15551234567"
	quote := entities.QuoteBreakdown{Total: 455}
	recipient, body, sid, err := g.NotifyNewEstimate(context.Background(), entities.EstimateRequest{
		ID:               "est-1",
		FullName:         "Ana Souza",
		Phone:            &phone,
		Rooms:            4,
		Bathrooms:        2,
		ServiceTypeLabel: "Deep Cleaning",
		Quote:            &quote,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipient != "+15550000001" {
		t.Fatalf("unexpected recipient: %q", recipient)
	}
	if !strings.HasPrefix(sid, "SM") {
		t.Fatalf("unexpected sid: %q", sid)
	}
	for _, want := range []string{"Ana Souza", "+15551234567", "Deep Cleaning", "4 rooms / 2 baths", "$455"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %q", want, body)
		}
	}
}

func TestNewTwilioGateway_MissingCredentials(t *testing.T) {
	t.Setenv("SMS_GATEWAY_MOCK", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_PHONE_NUMBER", "")
	t.Setenv("RECIPIENT_PHONE_NUMBER", "")

	if _, err := NewTwilioGateway(); !errors.Is(err, ErrMissingTwilioCredentials) {
		t.Fatalf("expected ErrMissingTwilioCredentials, got %v", err)
	}
}

func TestMessageBody_FallsBackToEmailAndNoQuote(t *testing.T) {
	email := "ana@example.com"
	body := messageBody(entities.EstimateRequest{
		FullName:         "Ana Souza",
		Email:            &email,
		Rooms:            3,
		Bathrooms:        1,
		ServiceTypeLabel: "Regular Cleaning",
	})
	if !strings.Contains(body, "ana@example.com") {
		t.Fatalf("expected email contact fallback: %q", body)
	}
	if !strings.Contains(body, "quote n/a") {
		t.Fatalf("expected n/a quote marker: %q", body)
	}
}
