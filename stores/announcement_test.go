package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/Scoheart-Order/metro/api"
)

type fakeAnnouncementAPI struct {
	list    []api.Announcement
	fetches int
}

func (f *fakeAnnouncementAPI) GetAllAnnouncements(context.Context) ([]api.Announcement, error) {
	return f.list, nil
}

func (f *fakeAnnouncementAPI) GetAnnouncementByID(_ context.Context, id int64) (*api.Announcement, error) {
	f.fetches++
	for _, a := range f.list {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, api.ErrNotFound
}

func sampleAnnouncements() *fakeAnnouncementAPI {
	return &fakeAnnouncementAPI{
		list: []api.Announcement{
			{ID: 3, Title: "New timetable", CreatedAt: "2026-08-30"},
			{ID: 2, Title: "Station works", CreatedAt: "2026-08-20"},
			{ID: 1, Title: "Welcome", CreatedAt: "2026-08-01"},
		},
	}
}

func TestAnnouncementsLatest(t *testing.T) {
	store := NewAnnouncements(sampleAnnouncements())
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	latest := store.Latest(2)
	if len(latest) != 2 || latest[0].ID != 3 || latest[1].ID != 2 {
		t.Fatalf("expected newest two, got %+v", latest)
	}
	if got := store.Latest(10); len(got) != 3 {
		t.Fatalf("oversized window must clamp, got %d", len(got))
	}
	if got := store.Latest(0); got != nil {
		t.Fatalf("zero window must be empty, got %+v", got)
	}
}

func TestAnnouncementByIDPrefersCache(t *testing.T) {
	backend := sampleAnnouncements()
	store := NewAnnouncements(backend)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	got, err := store.ByID(context.Background(), 2)
	if err != nil || got.Title != "Station works" {
		t.Fatalf("expected cached hit, got %+v err=%v", got, err)
	}
	if backend.fetches != 0 {
		t.Fatalf("cached hit must not call the backend, got %d fetches", backend.fetches)
	}
}

func TestAnnouncementByIDFallsBackToBackend(t *testing.T) {
	backend := sampleAnnouncements()
	store := NewAnnouncements(backend) // no Refresh: cold cache

	got, err := store.ByID(context.Background(), 1)
	if err != nil || got.Title != "Welcome" {
		t.Fatalf("expected backend fallback, got %+v err=%v", got, err)
	}
	if backend.fetches != 1 {
		t.Fatalf("expected one backend fetch, got %d", backend.fetches)
	}

	if _, err := store.ByID(context.Background(), 99); !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("expected not-found propagated, got %v", err)
	}
}
