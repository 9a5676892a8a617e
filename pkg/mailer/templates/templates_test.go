package templates

import (
	"strings"
	"testing"
	"time"
)

func TestRender_PropertyRejected(t *testing.T) {
	data := NotificationData{
		Kind:            "property_rejected",
		Name:            "Sara Bekele",
		CompanyName:     "Addis Estates",
		PropertyTitle:   "Villa in CMC",
		RejectionReason: "Missing photos",
		Time:            time.Now(),
	}

	text, html, err := Render(data.ToMap())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, body := range []string{text, html} {
		if !strings.Contains(body, "Sara Bekele") {
			t.Error("expected recipient name in body")
		}
		if !strings.Contains(body, "Villa in CMC") {
			t.Error("expected property title in body")
		}
		if !strings.Contains(body, "Missing photos") {
			t.Error("expected rejection reason in body")
		}
	}
}

func TestRender_InquiryReceived(t *testing.T) {
	data := NotificationData{
		Kind:           "inquiry_received",
		Name:           "Owner",
		CompanyName:    "Addis Estates",
		PropertyTitle:  "Two bedroom in Bole",
		InquiryMessage: "Is it still available?",
		SenderName:     "Abel",
		Time:           time.Now(),
	}

	text, _, err := Render(data.ToMap())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(text, "Is it still available?") {
		t.Error("expected inquiry message in body")
	}
}

func TestSubject_KnownKinds(t *testing.T) {
	kinds := []string{
		"account_approved", "account_rejected",
		"property_approved", "property_rejected",
		"inquiry_received", "inquiry_response",
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := Subject(k)
		if s == "Notification" {
			t.Errorf("kind %s has no specific subject", k)
		}
		if seen[s] {
			t.Errorf("duplicate subject %q", s)
		}
		seen[s] = true
	}
	if Subject("unknown_kind") != "Notification" {
		t.Error("expected generic fallback subject")
	}
}
