// Package client REST клиент playground-service.
package client

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

	apiv1 "playground-service/pkg/api/v1"
)

// APIError ответ сервера с кодом ошибки
type APIError struct {
	StatusCode int
	Details    apiv1.ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Reason == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s (%s)", e.StatusCode, e.Details.Reason, e.Details.InternalErrorCode)
}

// Client REST клиент
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New создает клиента. Пустой token не добавляет заголовок Authorization.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// ListNotes GET /notes
func (c *Client) ListNotes(ctx context.Context) ([]apiv1.Note, error) {
	var notes []apiv1.Note
	err := c.do(ctx, http.MethodGet, "/notes", nil, &notes)
	return notes, err
}

// GetNote GET /notes/{id}
func (c *Client) GetNote(ctx context.Context, id string) (apiv1.Note, error) {
	var note apiv1.Note
	err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &note)
	return note, err
}

// SearchNotes GET /notes/search?q=
func (c *Client) SearchNotes(ctx context.Context, q string) ([]apiv1.Note, error) {
	var notes []apiv1.Note
	err := c.do(ctx, http.MethodGet, "/notes/search?q="+url.QueryEscape(q), nil, &notes)
	return notes, err
}

// CreateNote POST /notes
func (c *Client) CreateNote(ctx context.Context, req apiv1.NoteRequest) (apiv1.Note, error) {
	var note apiv1.Note
	err := c.do(ctx, http.MethodPost, "/notes", req, &note)
	return note, err
}

// UpdateNote PUT /notes/{id}
func (c *Client) UpdateNote(ctx context.Context, id string, req apiv1.NoteRequest) (apiv1.Note, error) {
	var note apiv1.Note
	err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), req, &note)
	return note, err
}

// DeleteNote DELETE /notes/{id}
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil)
}

// IncrementKeys GET /increments
func (c *Client) IncrementKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := c.do(ctx, http.MethodGet, "/increments", nil, &keys)
	return keys, err
}

// GetIncrement GET /increments/{key}
func (c *Client) GetIncrement(ctx context.Context, key string) (apiv1.Increment, error) {
	var inc apiv1.Increment
	err := c.do(ctx, http.MethodGet, "/increments/"+url.PathEscape(key), nil, &inc)
	return inc, err
}

// SetIncrement POST /increments
func (c *Client) SetIncrement(ctx context.Context, key string, value int64) (apiv1.Increment, error) {
	var inc apiv1.Increment
	err := c.do(ctx, http.MethodPost, "/increments", apiv1.Increment{Key: key, Value: value}, &inc)
	return inc, err
}

// AddIncrement PUT /increments/{key} с телом-дельтой
func (c *Client) AddIncrement(ctx context.Context, key string, delta int64) error {
	return c.do(ctx, http.MethodPut, "/increments/"+url.PathEscape(key), delta, nil)
}

// DeleteIncrement DELETE /increments/{key}
func (c *Client) DeleteIncrement(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/increments/"+url.PathEscape(key), nil, nil)
}

// Hello GET /hello?name=
func (c *Client) Hello(ctx context.Context, name string) (apiv1.Greeting, error) {
	path := "/hello"
	if name != "" {
		path += "?name=" + url.QueryEscape(name)
	}
	var g apiv1.Greeting
	err := c.do(ctx, http.MethodGet, path, nil, &g)
	return g, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Тело может быть не JSON (например, 401 от middleware)
		_ = json.NewDecoder(resp.Body).Decode(&apiErr.Details)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
