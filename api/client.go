package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token. An empty string means
// "send no Authorization header"; it is not an error.
type TokenSource func(ctx context.Context) (string, error)

// ClientConfig tunes a [Client]. Zero values fall back to the defaults
// noted per field.
type ClientConfig struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080/api".
	BaseURL string
	// Timeout bounds each request end to end. Default 10s.
	Timeout time.Duration
	// TokenSource supplies the bearer token. Optional.
	TokenSource TokenSource
	// HTTPClient overrides the transport. Default: a fresh http.Client
	// with Timeout applied.
	HTTPClient *http.Client
	// UserAgent is sent on every request. Default "metro-client/1".
	UserAgent string
}

// Client is the shared HTTP plumbing plus one accessor per backend
// controller. Construct with [NewClient]; safe for concurrent use.
type Client struct {
	base      string
	http      *http.Client
	tokens    TokenSource
	userAgent string

	Auth          *AuthService
	Users         *UserService
	Metro         *MetroService
	Feedback      *FeedbackService
	Announcements *AnnouncementService
	Admin         *AdminService
}

// NewClient builds a [Client] for the given backend.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "metro-client/1"
	}

	c := &Client{
		base:      strings.TrimSuffix(cfg.BaseURL, "/"),
		http:      httpClient,
		tokens:    cfg.TokenSource,
		userAgent: userAgent,
	}
	c.Auth = &AuthService{c: c}
	c.Users = &UserService{c: c}
	c.Metro = &MetroService{c: c}
	c.Feedback = &FeedbackService{c: c}
	c.Announcements = &AnnouncementService{c: c}
	c.Admin = &AdminService{c: c}
	return c
}

// envelope mirrors the backend's uniform response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// upload sends one file as a multipart form, used only by avatar upload.
func (c *Client) upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	if err := mw.Close(); err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.tokens != nil {
		token, err := c.tokens(req.Context())
		if err != nil {
			return &Error{Kind: KindNetwork, Message: "token source failed", RequestID: requestID, cause: err}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error(), RequestID: requestID, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error(), RequestID: requestID, cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:      classify(resp.StatusCode),
			Status:    resp.StatusCode,
			Message:   messageFrom(raw),
			RequestID: requestID,
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "malformed envelope", RequestID: requestID}
	}
	if !env.Success {
		return &Error{Kind: KindValidation, Status: resp.StatusCode, Message: env.Message, RequestID: requestID}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "malformed payload", RequestID: requestID}
	}
	return nil
}

func messageFrom(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return ""
}

func queryPath(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
