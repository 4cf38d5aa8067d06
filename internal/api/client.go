// Package api is the HTTP client wrapper for the S-Event backend. Every call
// carries the bearer token, decodes JSON on 2xx and maps everything else to
// the small error taxonomy in errors.go. No retries: a failed request is
// terminal for that attempt.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sevent-cli/internal/model"

	"go.uber.org/zap"
)

// TokenSource returns the current bearer token, empty when logged out. Reading
// it per request (rather than caching at construction) keeps the client
// consistent with the session store after login/logout.
type TokenSource func() string

type Client struct {
	base  string
	http  *http.Client
	token TokenSource
	log   *zap.Logger
}

func New(base string, timeout time.Duration, token TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		http:  &http.Client{Timeout: timeout},
		token: token,
		log:   log,
	}
}

// Profile fetches the navbar profile for the decoded user id.
func (c *Client) Profile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/info/"+url.PathEscape(userID)+"/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Event fetches one event. A success=false envelope means the event does not
// exist as far as the server is concerned.
func (c *Client) Event(ctx context.Context, id string) (*model.Event, error) {
	var env struct {
		Success bool        `json:"success"`
		Data    model.Event `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrEventNotFound
	}
	return &env.Data, nil
}

// Events lists up to limit events (the home page and the liked-events fan-out
// both start from this).
func (c *Client) Events(ctx context.Context, limit int) ([]model.Event, error) {
	var env struct {
		Success bool          `json:"success"`
		Data    []model.Event `json:"data"`
	}
	path := fmt.Sprintf("/api/events?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrEventNotFound
	}
	return env.Data, nil
}

// CheckLiked reports whether the current user has liked the event.
func (c *Client) CheckLiked(ctx context.Context, id string) (bool, error) {
	var out struct {
		IsLiked bool `json:"isLiked"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id)+"/check-liked", nil, &out); err != nil {
		return false, err
	}
	return out.IsLiked, nil
}

// CheckSaved reports save status plus the authoritative save count.
func (c *Client) CheckSaved(ctx context.Context, id string) (saved bool, count int, err error) {
	var out struct {
		IsSaved   bool `json:"isSaved"`
		SaveCount int  `json:"saveCount"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id)+"/check-saved", nil, &out); err != nil {
		return false, 0, err
	}
	return out.IsSaved, out.SaveCount, nil
}

// ToggleLike flips the like state server-side and returns the settled state.
func (c *Client) ToggleLike(ctx context.Context, id string) (liked bool, count int, err error) {
	var env struct {
		Success bool `json:"success"`
		Data    struct {
			IsLiked          bool `json:"isLiked"`
			InterestingCount int  `json:"interestingCount"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events/"+url.PathEscape(id)+"/toggle-like", struct{}{}, &env); err != nil {
		return false, 0, err
	}
	if !env.Success {
		return false, 0, &APIError{Status: http.StatusOK, Message: "toggle-like rejected"}
	}
	return env.Data.IsLiked, env.Data.InterestingCount, nil
}

// ToggleSave flips the save state (used on the un-save path only; saving goes
// through a folder).
func (c *Client) ToggleSave(ctx context.Context, id string) (saved bool, count int, err error) {
	var env struct {
		Success   bool `json:"success"`
		IsSaved   bool `json:"isSaved"`
		SaveCount int  `json:"saveCount"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events/"+url.PathEscape(id)+"/toggle-save", struct{}{}, &env); err != nil {
		return false, 0, err
	}
	if !env.Success {
		return false, 0, &APIError{Status: http.StatusOK, Message: "toggle-save rejected"}
	}
	return env.IsSaved, env.SaveCount, nil
}

// Folders lists the caller's saved-event folders in server order.
func (c *Client) Folders(ctx context.Context) ([]string, error) {
	var out struct {
		Folders []string `json:"folders"`
	}
	if err := c.do(ctx, http.MethodGet, "/saved-events/folders", nil, &out); err != nil {
		return nil, err
	}
	return out.Folders, nil
}

// SaveToFolder files the event into the named folder, creating the folder
// server-side when it does not exist yet.
func (c *Client) SaveToFolder(ctx context.Context, eventID, folder string) error {
	body := struct {
		EventID    string `json:"eventId"`
		FolderName string `json:"folderName"`
	}{EventID: eventID, FolderName: folder}
	return c.do(ctx, http.MethodPost, "/saved-events", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// CreateReminder schedules a reminder for the event.
func (c *Client) CreateReminder(ctx context.Context, eventID string, at time.Time) error {
	body := struct {
		RemindAt time.Time `json:"remindAt"`
	}{RemindAt: at}
	return c.do(ctx, http.MethodPost, "/api/events/"+url.PathEscape(eventID)+"/reminders", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapStatus(resp *http.Response) error {
	msg := serverMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrEventNotFound, msg)
		}
		return ErrEventNotFound
	default:
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}

// serverMessage digs the human-readable message out of an error payload.
func serverMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
