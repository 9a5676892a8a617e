package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Phone    string `json:"phone" binding:"required,etphone"`
	Role     string `json:"role" binding:"omitempty,regrole"`
}

func TestAliases(t *testing.T) {
	Init()

	cases := []struct {
		name    string
		payload registerPayload
		wantOK  bool
	}{
		{"valid international phone", registerPayload{"a@b.et", "secret1", "+251911223344", "seller"}, true},
		{"valid local phone", registerPayload{"a@b.et", "secret1", "0911223344", ""}, true},
		{"short password", registerPayload{"a@b.et", "12345", "0911223344", ""}, false},
		{"foreign phone", registerPayload{"a@b.et", "secret1", "+4915111111", ""}, false},
		{"admin role rejected", registerPayload{"a@b.et", "secret1", "0911223344", "admin"}, false},
		{"bad email", registerPayload{"not-an-email", "secret1", "0911223344", ""}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(c.payload)
			if c.wantOK && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !c.wantOK && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestToDetails_FieldNamesFromJSONTags(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(registerPayload{Email: "bad", Password: "123", Phone: "+1555"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := ToDetails(err)
	for _, field := range []string{"email", "password", "phone"} {
		if _, ok := details[field]; !ok {
			t.Errorf("expected detail for %q, got %v", field, details)
		}
	}
}

func TestToDetails_NilError(t *testing.T) {
	if d := ToDetails(nil); d != nil {
		t.Errorf("expected nil details, got %v", d)
	}
}
