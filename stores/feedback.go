package stores

import (
	"context"
	"sync"

	"github.com/Scoheart-Order/metro/api"
)

// FeedbackAPI is the slice of the feedback service the store consumes.
// *api.FeedbackService satisfies it.
type FeedbackAPI interface {
	GetAllFeedbacks(ctx context.Context) ([]api.Feedback, error)
	GetAllRequests(ctx context.Context) ([]api.Request, error)
	CreateFeedback(ctx context.Context, in api.FeedbackInput) (*api.Feedback, error)
	CreateRequest(ctx context.Context, in api.RequestInput) (*api.Request, error)
	ReplyToFeedback(ctx context.Context, feedbackID int64, in api.ReplyInput) (*api.Reply, error)
	ReplyToRequest(ctx context.Context, requestID int64, in api.ReplyInput) (*api.Reply, error)
	UpdateRequestStatus(ctx context.Context, requestID int64, status string) (*api.Request, error)
}

// Feedback caches feedback entries and service requests, mirroring
// confirmed mutations into the cache so threads stay current without a
// full refresh.
type Feedback struct {
	apiSvc FeedbackAPI

	mu        sync.RWMutex
	feedbacks []api.Feedback
	requests  []api.Request
}

// NewFeedback returns an empty feedback store.
func NewFeedback(svc FeedbackAPI) *Feedback {
	return &Feedback{apiSvc: svc}
}

// Refresh reloads both lists wholesale.
func (f *Feedback) Refresh(ctx context.Context) error {
	feedbacks, err := f.apiSvc.GetAllFeedbacks(ctx)
	if err != nil {
		return err
	}
	requests, err := f.apiSvc.GetAllRequests(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedbacks = feedbacks
	f.requests = requests
	return nil
}

// Feedbacks returns the cached feedback entries.
func (f *Feedback) Feedbacks() []api.Feedback {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]api.Feedback(nil), f.feedbacks...)
}

// Requests returns the cached service requests.
func (f *Feedback) Requests() []api.Request {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]api.Request(nil), f.requests...)
}

// RequestsByStatus filters the cached requests.
func (f *Feedback) RequestsByStatus(status string) []api.Request {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []api.Request
	for _, r := range f.requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// SubmitFeedback creates a feedback entry and prepends the confirmed
// record, newest first.
func (f *Feedback) SubmitFeedback(ctx context.Context, in api.FeedbackInput) (*api.Feedback, error) {
	created, err := f.apiSvc.CreateFeedback(ctx, in)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.feedbacks = append([]api.Feedback{*created}, f.feedbacks...)
	f.mu.Unlock()
	return created, nil
}

// SubmitRequest creates a service request and prepends the confirmed
// record, newest first.
func (f *Feedback) SubmitRequest(ctx context.Context, in api.RequestInput) (*api.Request, error) {
	created, err := f.apiSvc.CreateRequest(ctx, in)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.requests = append([]api.Request{*created}, f.requests...)
	f.mu.Unlock()
	return created, nil
}

// ReplyToFeedback posts a reply and appends the confirmed reply to the
// cached thread.
func (f *Feedback) ReplyToFeedback(ctx context.Context, feedbackID int64, in api.ReplyInput) (*api.Reply, error) {
	reply, err := f.apiSvc.ReplyToFeedback(ctx, feedbackID, in)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	for i := range f.feedbacks {
		if f.feedbacks[i].ID == feedbackID {
			f.feedbacks[i].Replies = append(f.feedbacks[i].Replies, *reply)
			break
		}
	}
	f.mu.Unlock()
	return reply, nil
}

// ReplyToRequest posts a reply and appends the confirmed reply to the
// cached thread.
func (f *Feedback) ReplyToRequest(ctx context.Context, requestID int64, in api.ReplyInput) (*api.Reply, error) {
	reply, err := f.apiSvc.ReplyToRequest(ctx, requestID, in)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	for i := range f.requests {
		if f.requests[i].ID == requestID {
			f.requests[i].Replies = append(f.requests[i].Replies, *reply)
			break
		}
	}
	f.mu.Unlock()
	return reply, nil
}

// UpdateRequestStatus moves a request through its workflow and mirrors
// the backend's updated record into the cache.
func (f *Feedback) UpdateRequestStatus(ctx context.Context, requestID int64, status string) (*api.Request, error) {
	updated, err := f.apiSvc.UpdateRequestStatus(ctx, requestID, status)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	for i := range f.requests {
		if f.requests[i].ID == requestID {
			f.requests[i] = *updated
			break
		}
	}
	f.mu.Unlock()
	return updated, nil
}
