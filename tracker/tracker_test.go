package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/777sanket/LinkManager-Backend/model"
)

// In-memory stores backing the tracker tests.

type memLinkStore struct {
	mu     sync.Mutex
	links  map[string]*model.Link
	incErr error
}

func newMemLinkStore(links ...*model.Link) *memLinkStore {
	s := &memLinkStore{links: make(map[string]*model.Link)}
	for _, l := range links {
		s.links[l.ShortCode] = l
	}
	return s
}

func (s *memLinkStore) FindByShortCode(_ context.Context, code string) (*model.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.links[code]
	if !ok {
		return nil, ErrLinkNotFound
	}
	copied := *link
	return &copied, nil
}

func (s *memLinkStore) IncrementClicks(_ context.Context, linkID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incErr != nil {
		return 0, s.incErr
	}
	for _, link := range s.links {
		if link.ID == linkID {
			link.Clicks++
			return link.Clicks, nil
		}
	}
	return 0, ErrLinkNotFound
}

func (s *memLinkStore) clicks(code string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.links[code].Clicks
}

type memEventStore struct {
	mu        sync.Mutex
	events    []model.ClickEvent
	appendErr error
	findErr   error
}

func (s *memEventStore) Append(_ context.Context, event *model.ClickEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

func (s *memEventStore) FindByOwner(_ context.Context, userID uint) ([]model.ClickEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []model.ClickEvent
	for _, ev := range s.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *memEventStore) CountByOwner(_ context.Context, userID uint) (int64, error) {
	events, err := s.FindByOwner(context.Background(), userID)
	return int64(len(events)), err
}

func (s *memEventStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func testLink() *model.Link {
	return &model.Link{
		ID:            1,
		UserID:        42,
		OriginalLink:  "https://example.com/some/page",
		ShortCode:     "abc123xy",
		ShortenedLink: "http://localhost:3000/abc123xy",
	}
}

func TestRecordUnknownCode(t *testing.T) {
	links := newMemLinkStore(testLink())
	events := &memEventStore{}
	recorder := NewRecorder(links, events)

	_, err := recorder.Record(context.Background(), "missing", Visit{})
	if !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("Expected ErrLinkNotFound, got %v", err)
	}
	if events.count() != 0 {
		t.Errorf("Unknown code must not create events, got %d", events.count())
	}
}

func TestRecordExpiredLink(t *testing.T) {
	expiry := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	link := testLink()
	link.ExpirationTime = &expiry

	links := newMemLinkStore(link)
	events := &memEventStore{}
	recorder := NewRecorder(links, events).WithClock(func() time.Time { return expiry.Add(time.Hour) })

	_, err := recorder.Record(context.Background(), link.ShortCode, Visit{})
	if !errors.Is(err, ErrLinkExpired) {
		t.Errorf("Expected ErrLinkExpired, got %v", err)
	}
	if links.clicks(link.ShortCode) != 0 {
		t.Errorf("Expired link must not be incremented")
	}
	if events.count() != 0 {
		t.Errorf("Expired link must not create events, got %d", events.count())
	}
}

func TestRecordSuccess(t *testing.T) {
	link := testLink()
	links := newMemLinkStore(link)
	events := &memEventStore{}
	when := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	recorder := NewRecorder(links, events).WithClock(func() time.Time { return when })

	visit := Visit{
		UserAgent:    "Mozilla/5.0 (Linux; Android 13) Mobile Safari/537.36",
		ForwardedFor: "203.0.113.7, 10.0.0.1",
		RemoteAddr:   "10.0.0.2",
	}
	outcome, err := recorder.Record(context.Background(), link.ShortCode, visit)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if outcome.OriginalLink != link.OriginalLink {
		t.Errorf("Wrong redirect target: %s", outcome.OriginalLink)
	}
	if links.clicks(link.ShortCode) != 1 {
		t.Errorf("Counter should be 1, got %d", links.clicks(link.ShortCode))
	}
	if events.count() != 1 {
		t.Fatalf("Exactly one event expected, got %d", events.count())
	}

	ev := outcome.Event
	if ev.UserID != link.UserID {
		t.Errorf("Event owner should equal link owner, got %d", ev.UserID)
	}
	if ev.LinkID != link.ID || ev.OriginalLink != link.OriginalLink || ev.ShortenedLink != link.ShortenedLink {
		t.Errorf("Event snapshot does not match link: %+v", ev)
	}
	if ev.IPAddress != "203.0.113.7" {
		t.Errorf("Event IP should come from forwarded-for, got %s", ev.IPAddress)
	}
	if ev.DeviceType != "Mobile" || ev.UserDevice != "Android" {
		t.Errorf("Event device classification wrong: %s/%s", ev.DeviceType, ev.UserDevice)
	}
	if !ev.DateClicked.Equal(when) {
		t.Errorf("Event timestamp wrong: %v", ev.DateClicked)
	}
}

func TestRecordIncrementFailureAborts(t *testing.T) {
	links := newMemLinkStore(testLink())
	links.incErr = errors.New("connection reset")
	events := &memEventStore{}
	recorder := NewRecorder(links, events)

	_, err := recorder.Record(context.Background(), "abc123xy", Visit{})
	if err == nil {
		t.Fatalf("Increment failure must abort the redirect")
	}
	if events.count() != 0 {
		t.Errorf("No event may be written after a failed increment")
	}
}

func TestRecordAppendFailureAborts(t *testing.T) {
	links := newMemLinkStore(testLink())
	events := &memEventStore{appendErr: errors.New("connection reset")}
	recorder := NewRecorder(links, events)

	outcome, err := recorder.Record(context.Background(), "abc123xy", Visit{})
	if err == nil || outcome != nil {
		t.Fatalf("Append failure must abort the redirect, got outcome=%v err=%v", outcome, err)
	}
}

func TestRecordConcurrent(t *testing.T) {
	const n = 64

	link := testLink()
	links := newMemLinkStore(link)
	events := &memEventStore{}
	recorder := NewRecorder(links, events)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := recorder.Record(context.Background(), link.ShortCode, Visit{UserAgent: "curl/8.0.1"}); err != nil {
				t.Errorf("Concurrent record failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if links.clicks(link.ShortCode) != n {
		t.Errorf("Counter should converge to %d, got %d", n, links.clicks(link.ShortCode))
	}
	if events.count() != n {
		t.Errorf("Exactly %d events expected, got %d", n, events.count())
	}
}
