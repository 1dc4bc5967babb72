package util

import "testing"

func TestGenUUID(t *testing.T) {
	uuid := GenUUID()
	if uuid == "" {
		t.Errorf("UUID is empty")
	}

	uuid2 := GenUUID()
	if uuid == uuid2 {
		t.Errorf("UUID is duplicated")
	}
}

func TestGenShortCode(t *testing.T) {
	code := GenShortCode()
	if len(code) != shortCodeLen {
		t.Errorf("Short code length is not correct: %s", code)
	}

	code2 := GenShortCode()
	if code == code2 {
		t.Errorf("Short code is duplicated")
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"203.0.113.7, 10.0.0.1", "10.0.0.2", "203.0.113.7"},
		{" 203.0.113.7 ", "10.0.0.2", "203.0.113.7"},
		{"", "10.0.0.2", "10.0.0.2"},
		{"", "", "Unknown"},
	}

	for _, c := range cases {
		got := ClientIP(c.forwardedFor, c.remoteAddr)
		if got != c.want {
			t.Errorf("ClientIP(%q, %q) = %q, want %q", c.forwardedFor, c.remoteAddr, got, c.want)
		}
	}
}
