package webhook

import (
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// Verifier checks the signature on an incoming identity-provider event.
// Clerk signs its webhooks with svix.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

type svixVerifier struct {
	wh *svix.Webhook
}

func NewVerifier(secret string) (Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret is required")
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("init webhook verifier: %w", err)
	}
	return &svixVerifier{wh: wh}, nil
}

func (v *svixVerifier) Verify(payload []byte, headers http.Header) error {
	return v.wh.Verify(payload, headers)
}

// Event is the subset of a Clerk webhook payload the user directory needs.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	ID                    string         `json:"id"`
	Username              string         `json:"username"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	ImageURL              string         `json:"image_url"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
	UnsafeMetadata        UserMetadata   `json:"unsafe_metadata"`
}

type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

type UserMetadata struct {
	Role             string `json:"role"`
	EmployeeType     string `json:"employeeType"`
	EngineeringField string `json:"engineeringField"`
}

// PrimaryEmail resolves the primary address; empty when the payload has
// none, which callers must treat as a rejectable event.
func (d EventData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	return ""
}
