package stores

import (
	"context"
	"sync"

	"github.com/Scoheart-Order/metro/api"
)

// AnnouncementAPI is the slice of the announcement service the store
// consumes. *api.AnnouncementService satisfies it.
type AnnouncementAPI interface {
	GetAllAnnouncements(ctx context.Context) ([]api.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id int64) (*api.Announcement, error)
}

// Announcements caches the system announcements.
type Announcements struct {
	apiSvc AnnouncementAPI

	mu   sync.RWMutex
	list []api.Announcement
	byID map[int64]*api.Announcement
}

// NewAnnouncements returns an empty announcement store.
func NewAnnouncements(svc AnnouncementAPI) *Announcements {
	return &Announcements{
		apiSvc: svc,
		byID:   map[int64]*api.Announcement{},
	}
}

// Refresh reloads the announcement list wholesale.
func (a *Announcements) Refresh(ctx context.Context) error {
	list, err := a.apiSvc.GetAllAnnouncements(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int64]*api.Announcement, len(list))
	for i := range list {
		byID[list[i].ID] = &list[i]
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.list = list
	a.byID = byID
	return nil
}

// All returns the cached announcements in backend order.
func (a *Announcements) All() []api.Announcement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]api.Announcement(nil), a.list...)
}

// Latest returns the most recent n announcements, fewer when the cache
// holds fewer. The backend lists newest first.
func (a *Announcements) Latest(n int) []api.Announcement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if n > len(a.list) {
		n = len(a.list)
	}
	if n <= 0 {
		return nil
	}
	return append([]api.Announcement(nil), a.list[:n]...)
}

// ByID returns a cached announcement, falling back to the backend on a
// cache miss so deep links work before the first Refresh.
func (a *Announcements) ByID(ctx context.Context, id int64) (api.Announcement, error) {
	a.mu.RLock()
	cached, ok := a.byID[id]
	a.mu.RUnlock()
	if ok {
		return *cached, nil
	}

	fetched, err := a.apiSvc.GetAnnouncementByID(ctx, id)
	if err != nil {
		return api.Announcement{}, err
	}
	return *fetched, nil
}
