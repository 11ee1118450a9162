package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storyuniverse/internal/types"
)

const (
	pathStories    = "stories"
	pathCharacters = "characters"
	pathWorlds     = "worlds"

	maxErrorBody = 512
)

var ErrMissingId = errors.New("created record has no id")

// StatusError is returned for any response outside of 2xx
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	msg := e.Method + " " + e.Path + " responded with status " + strconv.Itoa(e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}

	return msg
}

// Client talks to the story backend. It does not retry, authenticate or cache.
type Client struct {
	Client *http.Client
	Logger *slog.Logger
	base   *url.URL
}

func New(baseUrl string, client *http.Client, l *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseUrl))
	if err != nil {
		return nil, fmt.Errorf("parsing backend URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend URL must be http or https, got %q", baseUrl)
	}

	// JoinPath keeps a relative path relative
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}

	if client == nil {
		client = http.DefaultClient
	}

	if l == nil {
		l = slog.Default()
	}

	return &Client{Client: client, Logger: l, base: u}, nil
}

func (c *Client) Stories(ctx context.Context) ([]*types.Story, error) {
	var rows []*types.Story
	if err := c.do(ctx, http.MethodGet, pathStories, nil, &rows); err != nil {
		return nil, fmt.Errorf("listing stories: %w", err)
	}

	return compact(c, ctx, pathStories, rows), nil
}

func (c *Client) Characters(ctx context.Context) ([]*types.Character, error) {
	var rows []*types.Character
	if err := c.do(ctx, http.MethodGet, pathCharacters, nil, &rows); err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}

	return compact(c, ctx, pathCharacters, rows), nil
}

func (c *Client) Worlds(ctx context.Context) ([]*types.World, error) {
	var rows []*types.World
	if err := c.do(ctx, http.MethodGet, pathWorlds, nil, &rows); err != nil {
		return nil, fmt.Errorf("listing worlds: %w", err)
	}

	return compact(c, ctx, pathWorlds, rows), nil
}

// CreateStory fails with ErrMissingId when the backend does not return the new id
func (c *Client) CreateStory(ctx context.Context, story *types.Story) (*types.Story, error) {
	var created types.Story
	if err := c.do(ctx, http.MethodPost, pathStories, story, &created); err != nil {
		return nil, fmt.Errorf("creating story: %w", err)
	}

	if created.Id == "" {
		return nil, fmt.Errorf("creating story: %w", ErrMissingId)
	}

	return &created, nil
}

func (c *Client) CreateCharacter(ctx context.Context, character *types.Character) (*types.Character, error) {
	var created types.Character
	if err := c.do(ctx, http.MethodPost, pathCharacters, character, &created); err != nil {
		return nil, fmt.Errorf("creating character: %w", err)
	}

	return &created, nil
}

// compact drops null entries of a listing
func compact[T any](c *Client, ctx context.Context, path string, rows []*T) []*T {
	out := rows[:0]
	for _, row := range rows {
		if row != nil {
			out = append(out, row)
		}
	}

	if dropped := len(rows) - len(out); dropped > 0 {
		c.Logger.WarnContext(ctx, "Skipped "+strconv.Itoa(dropped)+" null entries in "+path+" listing")
	}

	return out
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u := c.base.JoinPath("api", path)
	l := c.Logger.With(slog.String("method", method), slog.String("url", u.Path))

	var reqBody io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reqBody = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	l.DebugContext(ctx, "Begin backend request")

	res, err := c.Client.Do(req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to call backend: "+err.Error())
		return fmt.Errorf("calling backend: %w", err)
	}

	var bs []byte
	func() {
		defer res.Body.Close()
		bs, err = io.ReadAll(res.Body)
	}()

	if err != nil {
		l.ErrorContext(ctx, "Failed to read backend response: "+err.Error())
		return fmt.Errorf("calling backend (reading response): %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		l.ErrorContext(ctx, "Backend responded with status "+strconv.Itoa(res.StatusCode))
		return &StatusError{
			Method: method,
			Path:   u.Path,
			Status: res.StatusCode,
			Body:   truncate(strings.TrimSpace(string(bs)), maxErrorBody),
		}
	}

	if err := json.Unmarshal(bs, out); err != nil {
		l.ErrorContext(ctx, "Failed to unmarshal backend response: "+err.Error())
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
