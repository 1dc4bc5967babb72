package repo

import "testing"

func TestOrderClauseWhitelist(t *testing.T) {
	cases := []struct {
		sortBy string
		order  string
		want   string
	}{
		{"dateClicked", "desc", "date_clicked DESC"},
		{"dateClicked", "asc", "date_clicked ASC"},
		{"deviceType", "asc", "device_type ASC"},
		{"", "desc", "date_clicked DESC"},
		// anything not whitelisted must fall back to the default column
		{"date_clicked; DROP TABLE click_events", "desc", "date_clicked DESC"},
		{"unknownColumn", "weird", "date_clicked DESC"},
	}

	for _, c := range cases {
		got := orderClause(eventSortColumns, c.sortBy, c.order, "date_clicked")
		if got != c.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", c.sortBy, c.order, got, c.want)
		}
	}
}

func TestOrderClauseLinkColumns(t *testing.T) {
	if got := orderClause(linkSortColumns, "clicks", "desc", "date_created"); got != "clicks DESC" {
		t.Errorf("orderClause for clicks is not correct: %q", got)
	}
	if got := orderClause(linkSortColumns, "dateCreated", "asc", "date_created"); got != "date_created ASC" {
		t.Errorf("orderClause for dateCreated is not correct: %q", got)
	}
}
