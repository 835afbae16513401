package dto

// Honeypot is decoded on its own before the rest of a form so that a filled
// honeypot of any JSON type is reported as spam rather than a bad body.
type Honeypot struct {
	Honeypot any `json:"honeypot"`
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Honeypot any    `json:"honeypot"`
}

type NewsletterRequest struct {
	Email    string `json:"email"`
	Honeypot any    `json:"honeypot"`
}
