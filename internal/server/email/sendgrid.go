package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/placemate/placemate/internal/logging"
)

func sendViaSendgrid(msg Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(msg.FromName, msg.FromAddress))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.ToAddress))
	m.AddPersonalizations(p)

	if len(msg.PlainBody) > 0 {
		m.AddContent(mail.NewContent("text/plain", string(msg.PlainBody)))
	}
	if len(msg.HTMLBody) > 0 {
		m.AddContent(mail.NewContent("text/html", string(msg.HTMLBody)))
	}

	request := sendgrid.GetRequest(SendgridAPIKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.API(request)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		logging.Debugf("sendgrid api responded with status code %d", response.StatusCode)
		return fmt.Errorf("sendgrid api status %d", response.StatusCode)
	}
	// TODO: handle rate limiting and send retries
	return nil
}
