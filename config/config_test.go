package config

import (
	"testing"
	"time"
)

func TestParseZone(t *testing.T) {
	ist := parseZone("+05:30")
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, ist).Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("IST offset is not correct: %d", offset)
	}

	west := parseZone("-03:00")
	_, offset = time.Date(2025, 1, 1, 0, 0, 0, 0, west).Zone()
	if offset != -3*3600 {
		t.Errorf("-03:00 offset is not correct: %d", offset)
	}
}

func TestParseZoneBadInput(t *testing.T) {
	for _, bad := range []string{"", "05:30", "+5:30", "+aa:bb"} {
		if parseZone(bad) != time.UTC {
			t.Errorf("Bad offset %q should fall back to UTC", bad)
		}
	}
}
