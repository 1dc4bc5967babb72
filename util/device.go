package util

import "strings"

// DeviceType is the coarse device bucket a click is attributed to.
type DeviceType string

const (
	DeviceMobile  DeviceType = "Mobile"
	DeviceTablet  DeviceType = "Tablet"
	DeviceDesktop DeviceType = "Desktop"
	DeviceUnknown DeviceType = "Unknown"
)

// A deviceMarker maps a user-agent substring to a label. Matching is
// case-sensitive and walks the table in order, so more specific markers
// must come first. An exclude marker lets an overlapping engine token
// (Safari appears inside every Chrome UA) lose to the specific one.
type deviceMarker struct {
	contains string
	excludes string
	label    string
}

var mobileDevices = []deviceMarker{
	{contains: "Android", label: "Android"},
	{contains: "iPhone", label: "iOS"},
}

var tabletBrowsers = []deviceMarker{
	{contains: "Chrome", label: "Chrome"},
	{contains: "Safari", label: "Safari"},
	{contains: "Firefox", label: "Firefox"},
}

var desktopBrowsers = []deviceMarker{
	{contains: "Chrome", label: "Chrome"},
	{contains: "Safari", excludes: "Chrome", label: "Safari"},
	{contains: "Firefox", label: "Firefox"},
	{contains: "Edge", label: "Edge"},
}

func matchMarker(userAgent string, markers []deviceMarker, fallback string) string {
	for _, m := range markers {
		if !strings.Contains(userAgent, m.contains) {
			continue
		}
		if m.excludes != "" && strings.Contains(userAgent, m.excludes) {
			continue
		}
		return m.label
	}
	return fallback
}

// Classify maps a raw user-agent string to a device type and a descriptive
// label. Pure and total: an empty signature yields (Unknown, "Unknown"),
// anything unrecognized falls through to the Desktop bucket.
func Classify(userAgent string) (DeviceType, string) {
	if userAgent == "" {
		return DeviceUnknown, "Unknown"
	}

	if strings.Contains(userAgent, "Mobile") {
		return DeviceMobile, matchMarker(userAgent, mobileDevices, "Other Mobile")
	}

	if strings.Contains(userAgent, "Tablet") || strings.Contains(userAgent, "iPad") {
		return DeviceTablet, matchMarker(userAgent, tabletBrowsers, "Other Browser")
	}

	return DeviceDesktop, matchMarker(userAgent, desktopBrowsers, "Other Browser")
}
