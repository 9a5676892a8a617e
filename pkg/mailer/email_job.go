package mailer

// Notification kinds put on the email queue. Each one maps to a subject and
// a paragraph in the notification template.
const (
	KindAccountApproved  = "account_approved"
	KindAccountRejected  = "account_rejected"
	KindPropertyApproved = "property_approved"
	KindPropertyRejected = "property_rejected"
	KindInquiryReceived  = "inquiry_received"
	KindInquiryResponse  = "inquiry_response"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Kind selects a notification template; raw Subject/Text/HTML may be used
// instead when no template fits.
type EmailJob struct {
	To      string         `json:"to"`
	Kind    string         `json:"kind,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Subject string         `json:"subject,omitempty"`
	Text    string         `json:"text,omitempty"`
	HTML    string         `json:"html,omitempty"`
}
