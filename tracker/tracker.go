// Package tracker is the click-analytics core: recording a visit against a
// short link and aggregating recorded visits into the owner-facing reports.
// It talks to storage only through the LinkStore and EventStore interfaces
// so the pipeline can be exercised without a database.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/util"
)

var (
	// ErrLinkNotFound means no link carries the requested short code.
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkExpired means the link exists but is past its expiration.
	ErrLinkExpired = errors.New("link is inactive (expired)")
)

type LinkStore interface {
	FindByShortCode(ctx context.Context, code string) (*model.Link, error)
	// IncrementClicks bumps the counter by exactly one as a single atomic
	// store operation and returns the new total.
	IncrementClicks(ctx context.Context, linkID uint) (int64, error)
}

type EventStore interface {
	Append(ctx context.Context, event *model.ClickEvent) error
	FindByOwner(ctx context.Context, userID uint) ([]model.ClickEvent, error)
	CountByOwner(ctx context.Context, userID uint) (int64, error)
}

// Visit is what the redirect handler knows about the incoming request.
type Visit struct {
	UserAgent    string
	ForwardedFor string
	RemoteAddr   string
}

// Outcome is a successful record: where to send the visitor plus what was
// persisted on the way.
type Outcome struct {
	OriginalLink string
	Clicks       int64
	Event        model.ClickEvent
}

type Recorder struct {
	links  LinkStore
	events EventStore
	now    func() time.Time
}

func NewRecorder(links LinkStore, events EventStore) *Recorder {
	return &Recorder{links: links, events: events, now: time.Now}
}

// WithClock overrides the recorder's time source.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// Record resolves a short code, validates liveness, bumps the link's click
// counter and appends the immutable click event. Both writes must land before
// success is reported; a store failure after the liveness check aborts the
// redirect rather than redirecting unrecorded.
func (r *Recorder) Record(ctx context.Context, shortCode string, visit Visit) (*Outcome, error) {
	link, err := r.links.FindByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	if !util.IsLinkActive(link, r.now()) {
		return nil, ErrLinkExpired
	}

	clicks, err := r.links.IncrementClicks(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	deviceType, userDevice := util.Classify(visit.UserAgent)

	event := model.ClickEvent{
		UserID:        link.UserID,
		LinkID:        link.ID,
		DateClicked:   r.now(),
		OriginalLink:  link.OriginalLink,
		ShortenedLink: link.ShortenedLink,
		IPAddress:     util.ClientIP(visit.ForwardedFor, visit.RemoteAddr),
		UserDevice:    userDevice,
		DeviceType:    string(deviceType),
	}

	if err := r.events.Append(ctx, &event); err != nil {
		return nil, err
	}

	return &Outcome{
		OriginalLink: link.OriginalLink,
		Clicks:       clicks,
		Event:        event,
	}, nil
}
