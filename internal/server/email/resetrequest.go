package email

// ConfirmationData fills the reset confirmation template. ApproveLink and
// DenyLink carry the single-use token; Expiry is already formatted for
// display.
type ConfirmationData struct {
	AccountKind string
	ApproveLink string
	DenyLink    string
	Expiry      string
}

// SendResetConfirmation delivers the approve-or-deny handshake email for a
// new password reset request.
func SendResetConfirmation(name, address string, data ConfirmationData) error {
	return SendTemplate(name, address, "Confirm your password reset", "reset-confirmation", data)
}
