package api

import (
	"context"
	"fmt"
	"net/url"
)

// Reply is one reply on a feedback or request thread.
type Reply struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Feedback is a rider's rated feedback entry.
type Feedback struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Username  string  `json:"username"`
	Content   string  `json:"content"`
	Rating    int     `json:"rating"`
	CreatedAt string  `json:"createdAt"`
	Replies   []Reply `json:"replies"`
}

// FeedbackInput creates a feedback entry.
type FeedbackInput struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Request statuses as the backend serializes them.
const (
	RequestPending    = "pending"
	RequestProcessing = "processing"
	RequestResolved   = "resolved"
	RequestRejected   = "rejected"
)

// Request is a rider's service request with a workflow status.
type Request struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Username  string  `json:"username"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	Replies   []Reply `json:"replies"`
}

// RequestInput creates a service request.
type RequestInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReplyInput adds a reply to a feedback or request thread.
type ReplyInput struct {
	Content string `json:"content"`
}

// FeedbackService covers /feedbacks and /requests endpoints.
type FeedbackService struct {
	c *Client
}

func (s *FeedbackService) GetAllFeedbacks(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	err := s.c.get(ctx, "/feedbacks", &out)
	return out, err
}

func (s *FeedbackService) GetFeedbackByID(ctx context.Context, id int64) (*Feedback, error) {
	var out Feedback
	if err := s.c.get(ctx, fmt.Sprintf("/feedbacks/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserFeedbacks lists the caller's own feedback entries.
func (s *FeedbackService) GetUserFeedbacks(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	err := s.c.get(ctx, "/feedbacks/user", &out)
	return out, err
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, in FeedbackInput) (*Feedback, error) {
	var out Feedback
	if err := s.c.post(ctx, "/feedbacks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/feedbacks/%d", id), nil)
}

// ReplyToFeedback appends a reply to a feedback thread.
func (s *FeedbackService) ReplyToFeedback(ctx context.Context, feedbackID int64, in ReplyInput) (*Reply, error) {
	var out Reply
	if err := s.c.post(ctx, fmt.Sprintf("/feedbacks/%d/replies", feedbackID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FeedbackService) GetAllRequests(ctx context.Context) ([]Request, error) {
	var out []Request
	err := s.c.get(ctx, "/requests", &out)
	return out, err
}

func (s *FeedbackService) GetRequestByID(ctx context.Context, id int64) (*Request, error) {
	var out Request
	if err := s.c.get(ctx, fmt.Sprintf("/requests/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserRequests lists the caller's own service requests.
func (s *FeedbackService) GetUserRequests(ctx context.Context) ([]Request, error) {
	var out []Request
	err := s.c.get(ctx, "/requests/user", &out)
	return out, err
}

func (s *FeedbackService) CreateRequest(ctx context.Context, in RequestInput) (*Request, error) {
	var out Request
	if err := s.c.post(ctx, "/requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplyToRequest appends a reply to a request thread.
func (s *FeedbackService) ReplyToRequest(ctx context.Context, requestID int64, in ReplyInput) (*Reply, error) {
	var out Reply
	if err := s.c.post(ctx, fmt.Sprintf("/requests/%d/replies", requestID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequestStatus moves a request through its workflow. Admin only.
func (s *FeedbackService) UpdateRequestStatus(ctx context.Context, requestID int64, status string) (*Request, error) {
	params := url.Values{}
	params.Set("status", status)

	var out Request
	if err := s.c.put(ctx, queryPath(fmt.Sprintf("/requests/%d/status", requestID), params), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
