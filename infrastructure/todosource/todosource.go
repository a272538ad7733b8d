// Package todosource fetches demo todo records used to seed the board.
package todosource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jrazmi/taskboard/sdk/logger"
)

// Todo is one record as published by the demo API.
type Todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Options is the exportable configuration struct
type Options struct {
	URL     string        `yaml:"url" env:"SEED_URL" default:"https://jsonplaceholder.typicode.com/todos"`
	Limit   int           `yaml:"limit" env:"SEED_LIMIT" default:"20"`
	Timeout time.Duration `yaml:"timeout" env:"SEED_TIMEOUT" default:"10s"`
}

// Client reads todos from a JSON endpoint.
type Client struct {
	url     string
	limit   int
	timeout time.Duration
	http    *http.Client
	log     *logger.Logger
}

// Option adjusts a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger reports skipped records to log.
func WithLogger(log *logger.Logger) Option {
	return func(cl *Client) {
		cl.log = log
	}
}

// New creates a Client. A non-positive limit keeps every record; a
// non-positive timeout leaves the bound to the caller's context.
func New(cfg Options, opts ...Option) *Client {
	c := &Client{
		url:     cfg.URL,
		limit:   cfg.Limit,
		timeout: cfg.Timeout,
		http:    &http.Client{},
		log:     logger.NewDefault(logger.WithOutput(io.Discard)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch requests the todo list and returns at most limit records in the
// order the API sent them.
func (c *Client) Fetch(ctx context.Context) ([]Todo, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("requesting %s: unexpected status %s", c.url, resp.Status)
	}

	todos, err := c.decode(ctx, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.url, err)
	}
	return todos, nil
}

// decode streams the array so only the first limit elements are read. An
// element that does not fit Todo is skipped; it still counts toward the limit.
func (c *Client) decode(ctx context.Context, r io.Reader) ([]Todo, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, errors.New("expected a json array")
	}

	todos := []Todo{}
	for i := 0; dec.More(); i++ {
		if c.limit > 0 && i >= c.limit {
			break
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		var t Todo
		if err := json.Unmarshal(raw, &t); err != nil {
			c.log.WarnContext(ctx, "skipping todo", "index", i, "err", err)
			continue
		}
		todos = append(todos, t)
	}
	return todos, nil
}
