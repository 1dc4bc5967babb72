package util

import (
	"time"

	"github.com/777sanket/LinkManager-Backend/model"
)

// IsLinkActive reports whether a link is still live at the given instant.
// A link with no expiration never goes inactive. With an expiration set,
// the link is inactive from that exact instant onward.
func IsLinkActive(link *model.Link, now time.Time) bool {
	if link.ExpirationTime == nil {
		return true
	}
	return now.Before(*link.ExpirationTime)
}

// LinkStatus renders the active flag the way list/create responses expose it.
func LinkStatus(link *model.Link, now time.Time) string {
	if IsLinkActive(link, now) {
		return "active"
	}
	return "inactive"
}
