// Package client is the single point of HTTP access to the Notes Manager
// API. It unwraps the response envelope into plain values or typed errors;
// failures propagate immediately, there are no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NoteFields is a partial update payload; nil means "leave unchanged".
type NoteFields struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// APIError is returned for any success=false envelope or non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (%d): %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id uuid.UUID) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id.String(), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, title, description string) (*Note, error) {
	payload := map[string]string{
		"title":       title,
		"description": description,
	}
	var note Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", payload, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id uuid.UUID, fields NoteFields) (*Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+id.String(), fields, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := c.do(ctx, http.MethodDelete, "/api/notes/"+id.String(), nil, nil); err != nil {
		return false, err
	}
	return true, nil
}

// envelope mirrors the server's uniform response shape. Success is a
// pointer so a body without the field is distinguishable from success=false.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Fail loudly on anything that is not the envelope; a bare array or
	// unexpected shape must never be treated as an empty result.
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Success == nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "unrecognized response shape",
		}
	}

	if !*env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Detail:     env.Error,
		}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    "unrecognized response shape",
				Detail:     err.Error(),
			}
		}
	}
	return nil
}
