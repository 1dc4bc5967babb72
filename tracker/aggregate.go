package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/777sanket/LinkManager-Backend/util"
)

const dayKeyFormat = "02-01-2006"

// DateClicks is one entry of the date-wise report: a calendar day and the
// cumulative number of clicks up to and including that day.
type DateClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type DeviceClicks struct {
	DeviceType string `json:"deviceType"`
	Clicks     int64  `json:"clicks"`
}

// Aggregator computes the owner-scoped analytics views. Day bucketing happens
// in the configured zone; window is how many most-recent day buckets the
// date-wise report keeps.
type Aggregator struct {
	events EventStore
	zone   *time.Location
	window int
}

func NewAggregator(events EventStore, zone *time.Location, window int) *Aggregator {
	if zone == nil {
		zone = time.UTC
	}
	if window <= 0 {
		window = 4
	}
	return &Aggregator{events: events, zone: zone, window: window}
}

// TotalClicks counts every click event recorded for the owner.
func (a *Aggregator) TotalClicks(ctx context.Context, userID uint) (int64, error) {
	return a.events.CountByOwner(ctx, userID)
}

// ClicksByDate buckets the owner's clicks by calendar day, turns the buckets
// into a running cumulative series in chronological order, then returns the
// most recent entries newest-first. Days without clicks never appear, so the
// newest entry's value already covers every older click, including ones that
// fell outside the display window.
func (a *Aggregator) ClicksByDate(ctx context.Context, userID uint) ([]DateClicks, error) {
	events, err := a.events.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int64)
	for _, ev := range events {
		local := ev.DateClicked.In(a.zone)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.zone)
		counts[day]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]DateClicks, 0, len(days))
	var running int64
	for _, day := range days {
		running += counts[day]
		series = append(series, DateClicks{Date: day.Format(dayKeyFormat), Clicks: running})
	}

	// newest first, capped to the display window
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	if len(series) > a.window {
		series = series[:a.window]
	}
	return series, nil
}

// deviceOrder fixes both the zero-filled buckets and the tie-break order.
var deviceOrder = []util.DeviceType{util.DeviceDesktop, util.DeviceTablet, util.DeviceMobile}

// ClicksByDevice counts the owner's clicks per device bucket. All three
// buckets are always present, clicks with an unknown device type are dropped,
// and the result is sorted by count descending with ties keeping the
// Desktop/Tablet/Mobile declaration order.
func (a *Aggregator) ClicksByDevice(ctx context.Context, userID uint) ([]DeviceClicks, error) {
	events, err := a.events.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(deviceOrder))
	for _, d := range deviceOrder {
		counts[string(d)] = 0
	}
	for _, ev := range events {
		if _, ok := counts[ev.DeviceType]; ok {
			counts[ev.DeviceType]++
		}
	}

	out := make([]DeviceClicks, 0, len(deviceOrder))
	for _, d := range deviceOrder {
		out = append(out, DeviceClicks{DeviceType: string(d), Clicks: counts[string(d)]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Clicks > out[j].Clicks })
	return out, nil
}
