package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Collection names exposed by the remote store.
const (
	CollectionUsers     = "users"
	CollectionPaketData = "paketData"
	CollectionTransaksi = "transaksi"
)

// Client talks to the remote collection store (a json-server style mock API).
// Every method is a single blocking HTTP call: no retry, no timeout of its own,
// no translation of failures into domain errors. A non-2xx response becomes a
// *StatusCodeError; everything else is the transport error as-is.
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

// List fetches a collection, optionally narrowed by an exact-match query filter,
// and decodes the JSON array into out.
func (c *Client) List(ctx context.Context, collection string, filter url.Values, out any) error {
	endpoint := c.baseURL + "/" + collection
	if len(filter) > 0 {
		endpoint += "?" + filter.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.recordURL(collection, id), nil, out)
}

// Create posts a new record. The store assigns the id; the stored record,
// id included, is decoded into out.
func (c *Client) Create(ctx context.Context, collection string, record any, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/"+collection, record, out)
}

// Patch applies a partial update to a record and decodes the updated record into out.
func (c *Client) Patch(ctx context.Context, collection, id string, partial any, out any) error {
	return c.do(ctx, http.MethodPatch, c.recordURL(collection, id), partial, out)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.recordURL(collection, id), nil, nil)
}

func (c *Client) recordURL(collection, id string) string {
	return c.baseURL + "/" + collection + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewStatusCodeError(resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
