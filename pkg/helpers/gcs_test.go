package helpers

import "testing"

func TestObjectPathFromURL_RoundTrip(t *testing.T) {
	url := ObjectURL("listings-bucket", "properties/prop-1/abc.jpg")

	got := ObjectPathFromURL("listings-bucket", url)

	if got != "properties/prop-1/abc.jpg" {
		t.Errorf("expected object path round trip, got %q", got)
	}
}

func TestObjectPathFromURL_ForeignURL(t *testing.T) {
	cases := []string{
		"https://storage.googleapis.com/other-bucket/properties/prop-1/abc.jpg",
		"https://example.com/listings-bucket/abc.jpg",
		"",
	}
	for _, url := range cases {
		if got := ObjectPathFromURL("listings-bucket", url); got != "" {
			t.Errorf("expected empty path for %q, got %q", url, got)
		}
	}
}
