package api

import (
	"context"
	"fmt"
)

// Announcement is a system announcement authored by an admin.
type Announcement struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AdminID   int64  `json:"adminId"`
	AdminName string `json:"adminName,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AnnouncementInput creates or updates an announcement.
type AnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnnouncementService covers /announcements endpoints. Mutations are
// admin-only server-side.
type AnnouncementService struct {
	c *Client
}

func (s *AnnouncementService) GetAllAnnouncements(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	err := s.c.get(ctx, "/announcements", &out)
	return out, err
}

func (s *AnnouncementService) GetAnnouncementByID(ctx context.Context, id int64) (*Announcement, error) {
	var out Announcement
	if err := s.c.get(ctx, fmt.Sprintf("/announcements/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*Announcement, error) {
	var out Announcement
	if err := s.c.post(ctx, "/announcements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id int64, in AnnouncementInput) (*Announcement, error) {
	var out Announcement
	if err := s.c.put(ctx, fmt.Sprintf("/announcements/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/announcements/%d", id), nil)
}
