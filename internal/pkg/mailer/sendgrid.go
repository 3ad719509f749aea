package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sony/gobreaker"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

const sendgridHost = "https://api.sendgrid.com"

// SendGridMailer implements Mailer against the SendGrid v3 API. All
// provider calls run behind a circuit breaker so a degraded provider
// fails fast instead of holding requests.
type SendGridMailer struct {
	apiKey  string
	from    *sgmail.Email
	breaker *gobreaker.CircuitBreaker
}

// NewSendGridMailer creates a SendGrid-backed mailer.
func NewSendGridMailer(apiKey, fromName, fromEmail string, breaker *gobreaker.CircuitBreaker) *SendGridMailer {
	return &SendGridMailer{
		apiKey:  apiKey,
		from:    sgmail.NewEmail(fromName, fromEmail),
		breaker: breaker,
	}
}

var _ Mailer = (*SendGridMailer)(nil)

// Send sends a single message.
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.SendBulk(ctx, msg, msg.To)
	return err
}

// SendBulk sends one message to many recipients, one personalization each
// so recipients never see each other.
func (m *SendGridMailer) SendBulk(ctx context.Context, msg Message, to []Recipient) (int, error) {
	if len(to) == 0 {
		return 0, nil
	}

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.Subject = msg.Subject

	for _, r := range to {
		p := sgmail.NewPersonalization()
		p.AddTos(sgmail.NewEmail(r.Name, r.Email))
		v3.AddPersonalizations(p)
	}

	if msg.TextBody != "" {
		v3.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	}
	v3.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))

	_, err := m.breaker.Execute(func() (interface{}, error) {
		request := sendgrid.GetRequest(m.apiKey, "/v3/mail/send", sendgridHost)
		request.Method = http.MethodPost
		request.Body = sgmail.GetRequestBody(v3)

		resp, err := sendgrid.API(request)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("sendgrid mail send returned status %d: %s", resp.StatusCode, resp.Body)
		}
		return resp, nil
	})
	if err != nil {
		return 0, fmt.Errorf("sendgrid send failed: %w", err)
	}

	logger.Info().Int("recipients", len(to)).Str("subject", msg.Subject).Msg("Mail handed to SendGrid")
	return len(to), nil
}

// UpsertContact adds or updates a contact on the provider's list.
func (m *SendGridMailer) UpsertContact(ctx context.Context, contact Recipient) error {
	payload := map[string]interface{}{
		"contacts": []map[string]string{
			{"email": contact.Email, "first_name": contact.Name},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode contact payload: %w", err)
	}

	_, err = m.breaker.Execute(func() (interface{}, error) {
		request := sendgrid.GetRequest(m.apiKey, "/v3/marketing/contacts", sendgridHost)
		request.Method = http.MethodPut
		request.Body = body

		resp, err := sendgrid.API(request)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("sendgrid contact upsert returned status %d: %s", resp.StatusCode, resp.Body)
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("sendgrid contact upsert failed: %w", err)
	}
	return nil
}

// DeleteContact removes a contact by email. The marketing API deletes by
// contact id, so the email is resolved with a search first.
func (m *SendGridMailer) DeleteContact(ctx context.Context, email string) error {
	_, err := m.breaker.Execute(func() (interface{}, error) {
		id, err := m.findContactID(email)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, nil // Unknown to the provider; nothing to delete
		}

		request := sendgrid.GetRequest(m.apiKey, "/v3/marketing/contacts", sendgridHost)
		request.Method = http.MethodDelete
		request.QueryParams = map[string]string{"ids": id}

		resp, err := sendgrid.API(request)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("sendgrid contact delete returned status %d: %s", resp.StatusCode, resp.Body)
		}
		return resp, nil
	})
	if err != nil {
		return fmt.Errorf("sendgrid contact delete failed: %w", err)
	}
	return nil
}

func (m *SendGridMailer) findContactID(email string) (string, error) {
	query := map[string]string{
		"query": fmt.Sprintf("email = '%s'", email),
	}
	body, err := json.Marshal(query)
	if err != nil {
		return "", err
	}

	request := sendgrid.GetRequest(m.apiKey, "/v3/marketing/contacts/search", sendgridHost)
	request.Method = http.MethodPost
	request.Body = body

	resp, err := sendgrid.API(request)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid contact search returned status %d: %s", resp.StatusCode, resp.Body)
	}

	var result struct {
		Result []struct {
			ID string `json:"id"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &result); err != nil {
		return "", fmt.Errorf("failed to decode contact search response: %w", err)
	}
	if len(result.Result) == 0 {
		return "", nil
	}
	return result.Result[0].ID, nil
}
