package email

import (
	"bytes"
	"errors"
	"os"

	"github.com/placemate/placemate/internal/logging"
)

var (
	FromAddress    = "noreply@placemate.app"
	FromName       = "PlaceMate"
	SendgridAPIKey = os.Getenv("SENDGRID_API_KEY")

	// TestMode captures outgoing messages in TestSent instead of delivering
	// them.
	TestMode = false
	TestSent = []Message{}

	ErrNotConfigured = errors.New("email sending not configured")
)

type Message struct {
	FromName    string
	FromAddress string
	ToName      string
	ToAddress   string
	Subject     string
	PlainBody   []byte
	HTMLBody    []byte
}

func IsConfigured() bool {
	return len(SendgridAPIKey) > 0
}

// SendTemplate renders the named template pair (plain and html) with data and
// delivers the result to address.
func SendTemplate(name, address, subject, template string, data any) error {
	var plain, html bytes.Buffer

	if err := textTemplateList.ExecuteTemplate(&plain, template+".text.plain", data); err != nil {
		return err
	}
	if err := htmlTemplateList.ExecuteTemplate(&html, template+".text.html", data); err != nil {
		return err
	}

	msg := Message{
		FromName:    FromName,
		FromAddress: FromAddress,
		ToName:      name,
		ToAddress:   address,
		Subject:     subject,
		PlainBody:   plain.Bytes(),
		HTMLBody:    html.Bytes(),
	}

	if TestMode {
		logging.Debugf("sent email to %q: %s", address, subject)
		TestSent = append(TestSent, msg)
		return nil
	}

	if !IsConfigured() {
		return ErrNotConfigured
	}

	return sendViaSendgrid(msg)
}
