package util

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		userAgent  string
		deviceType DeviceType
		userDevice string
	}{
		{"", DeviceUnknown, "Unknown"},
		{"Mozilla/5.0 (Linux; Android 13) Mobile Safari/537.36", DeviceMobile, "Android"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 16_5) Mobile/15E148", DeviceMobile, "iOS"},
		{"SomethingMobile", DeviceMobile, "Other Mobile"},
		{"Mozilla/5.0 (iPad; CPU OS 16_5) Safari/604.1", DeviceTablet, "Safari"},
		{"Mozilla/5.0 (Linux; Tablet) Chrome/114.0", DeviceTablet, "Chrome"},
		{"Mozilla/5.0 (Linux; Tablet) Firefox/114.0", DeviceTablet, "Firefox"},
		{"Mozilla/5.0 (Linux; Tablet) Opera/99", DeviceTablet, "Other Browser"},
		{"Mozilla/5.0 (Windows NT 10.0) Chrome/114.0 Safari/537.36", DeviceDesktop, "Chrome"},
		{"Mozilla/5.0 (Macintosh) Version/16.5 Safari/605.1.15", DeviceDesktop, "Safari"},
		{"Mozilla/5.0 (X11; Linux x86_64) Firefox/114.0", DeviceDesktop, "Firefox"},
		{"Mozilla/5.0 (Windows NT 10.0) Edge/114.0", DeviceDesktop, "Edge"},
		{"curl/8.0.1", DeviceDesktop, "Other Browser"},
	}

	for _, c := range cases {
		deviceType, userDevice := Classify(c.userAgent)
		if deviceType != c.deviceType || userDevice != c.userDevice {
			t.Errorf("Classify(%q) = (%s, %s), want (%s, %s)", c.userAgent, deviceType, userDevice, c.deviceType, c.userDevice)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	ua := "Mozilla/5.0 (iPad; CPU OS 16_5) Safari/604.1"
	t1, d1 := Classify(ua)
	t2, d2 := Classify(ua)
	if t1 != t2 || d1 != d2 {
		t.Errorf("Classify is not deterministic: (%s, %s) vs (%s, %s)", t1, d1, t2, d2)
	}
}

func TestClassifyMobileWinsOverTablet(t *testing.T) {
	// A UA carrying both markers must land in the mobile bucket.
	deviceType, _ := Classify("Mozilla/5.0 (Linux; Android 13; Tablet) Mobile")
	if deviceType != DeviceMobile {
		t.Errorf("Mobile marker should win over tablet, got %s", deviceType)
	}
}
