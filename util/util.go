package util

import (
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

const shortCodeLen = 8

func GenUUID() string {
	return shortuuid.New()
}

// GenShortCode returns the token appended to the base URL for a new link.
func GenShortCode() string {
	return shortuuid.New()[:shortCodeLen]
}

// ClientIP picks the best-effort origin address of a visit: the first entry
// of the forwarded-for header, else the connection's peer address, else a
// literal "Unknown".
func ClientIP(forwardedFor string, remoteAddr string) string {
	if forwardedFor != "" {
		first := strings.SplitN(forwardedFor, ",", 2)[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if remoteAddr != "" {
		return remoteAddr
	}
	return "Unknown"
}
