package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// NotificationData carries every field the notification templates may use.
// Unused fields render empty and their sections are skipped.
type NotificationData struct {
	Kind        string
	Name        string // recipient display name
	CompanyName string
	SupportURL  string
	FrontendURL string

	PropertyTitle   string
	RejectionReason string
	InquirySubject  string
	InquiryMessage  string
	ResponseMessage string
	SenderName      string

	Time time.Time
}

// ToMap converts NotificationData to an EmailJob.Data payload.
func (d NotificationData) ToMap() map[string]any {
	return map[string]any{
		"Kind":            d.Kind,
		"Name":            d.Name,
		"CompanyName":     d.CompanyName,
		"SupportURL":      d.SupportURL,
		"FrontendURL":     d.FrontendURL,
		"PropertyTitle":   d.PropertyTitle,
		"RejectionReason": d.RejectionReason,
		"InquirySubject":  d.InquirySubject,
		"InquiryMessage":  d.InquiryMessage,
		"ResponseMessage": d.ResponseMessage,
		"SenderName":      d.SenderName,
		"Time":            d.Time.UTC().Format(time.RFC3339),
	}
}

// Subject returns the subject line for a notification kind.
func Subject(kind string) string {
	switch strings.ToLower(kind) {
	case "account_approved":
		return "Your account has been approved"
	case "account_rejected":
		return "Your account approval was revoked"
	case "property_approved":
		return "Your listing has been approved"
	case "property_rejected":
		return "Your listing was rejected"
	case "inquiry_received":
		return "New inquiry about your listing"
	case "inquiry_response":
		return "You received a reply to your inquiry"
	default:
		return "Notification"
	}
}

func funcs() map[string]any {
	return map[string]any{
		"upper": strings.ToUpper,
		"eq":    func(a, b string) bool { return strings.EqualFold(a, b) },
	}
}

// Render produces the text and HTML bodies of the notification template for
// the given job data.
func Render(data map[string]any) (text string, html string, err error) {
	text, err = renderFile("notification.text.tmpl", false, data)
	if err != nil {
		return "", "", err
	}
	html, err = renderFile("notification.html.tmpl", true, data)
	if err != nil {
		return "", "", err
	}
	return text, html, nil
}

func renderFile(filename string, isHTML bool, data any) (string, error) {
	var buf bytes.Buffer
	if isHTML {
		tpl, e := htmpl.New(filename).Funcs(htmpl.FuncMap(funcs())).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse html %q: %w", filename, e)
		}
		if e := tpl.Execute(&buf, data); e != nil {
			return "", fmt.Errorf("exec %q: %w", filename, e)
		}
		return buf.String(), nil
	}
	tpl, e := texttpl.New(filename).Funcs(texttpl.FuncMap(funcs())).ParseFS(FS, filename)
	if e != nil {
		return "", fmt.Errorf("parse text %q: %w", filename, e)
	}
	if e := tpl.Execute(&buf, data); e != nil {
		return "", fmt.Errorf("exec %q: %w", filename, e)
	}
	return buf.String(), nil
}
