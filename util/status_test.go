package util

import (
	"testing"
	"time"

	"github.com/777sanket/LinkManager-Backend/model"
)

func TestIsLinkActiveNoExpiration(t *testing.T) {
	link := &model.Link{}
	farFuture := time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)
	if !IsLinkActive(link, time.Now()) || !IsLinkActive(link, farFuture) {
		t.Errorf("Link without expiration should always be active")
	}
}

func TestIsLinkActiveBoundary(t *testing.T) {
	expiry := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	link := &model.Link{ExpirationTime: &expiry}

	if !IsLinkActive(link, expiry.Add(-time.Second)) {
		t.Errorf("Link should be active before expiration")
	}
	if IsLinkActive(link, expiry) {
		t.Errorf("Link should be inactive exactly at expiration")
	}
	if IsLinkActive(link, expiry.Add(time.Second)) {
		t.Errorf("Link should be inactive after expiration")
	}
}

func TestLinkStatus(t *testing.T) {
	expiry := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	link := &model.Link{ExpirationTime: &expiry}

	if got := LinkStatus(link, expiry.Add(-time.Hour)); got != "active" {
		t.Errorf("Status should be active, got %s", got)
	}
	if got := LinkStatus(link, expiry.Add(time.Hour)); got != "inactive" {
		t.Errorf("Status should be inactive, got %s", got)
	}
}
