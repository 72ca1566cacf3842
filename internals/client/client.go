package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	helper "folio_backend/internals/helpers"
)

var validate = validator.New()

// APIError carries the server's error envelope back to the caller.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client is a typed consumer of the backend API. Reads go through an
// injectable cache keyed by path and are de-duplicated in flight,
// writes invalidate the affected keys.
type Client struct {
	base  string
	http  *http.Client
	cache Cache
	group singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func New(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: 15 * time.Second, Jar: jar},
		cache: NewMemoryCache(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = noopCache{}
	}
	return c
}

// Mutate drops a cached path so the next read refetches it.
func (c *Client) Mutate(path string) {
	c.cache.Delete(path)
}

type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Pagination *helper.Pagination  `json:"pagination"`
	Error      string              `json:"error"`
	ErrorCode  string              `json:"error_code"`
	Fields     map[string][]string `json:"fields"`
}

// get fetches path with cache and in-flight de-duplication. Concurrent
// callers of the same path share one request.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if body, ok := c.cache.Get(path); ok {
		return body, nil
	}
	v, err, _ := c.group.Do(path, func() (any, error) {
		if body, ok := c.cache.Get(path); ok {
			return body, nil
		}
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		c.cache.Set(path, body)
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if err := sonic.Unmarshal(body, &env); err == nil && env.Error != "" {
			apiErr.Message = env.Error
			apiErr.Code = env.ErrorCode
			apiErr.Fields = env.Fields
		}
		return nil, apiErr
	}
	return body, nil
}

func decodeData[T any](body []byte) (T, error) {
	var env envelope
	var zero T
	if err := sonic.Unmarshal(body, &env); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return zero, nil
	}
	var out T
	if err := sonic.Unmarshal(env.Data, &out); err != nil {
		return zero, fmt.Errorf("decode data: %w", err)
	}
	return out, nil
}

// Get reads a resource at path, served from cache when warm.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeData[T](body)
}

// Create validates the payload locally, posts it, and invalidates the
// collection key. Validation failures never reach the wire.
func Create[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	if err := validate.Struct(payload); err != nil {
		return zero, validationAPIError(err)
	}
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return zero, err
	}
	c.Mutate(path)
	return decodeData[T](body)
}

// Update validates and PUTs, invalidating both the item and its
// collection.
func Update[T any](ctx context.Context, c *Client, collection, path string, payload any) (T, error) {
	var zero T
	if err := validate.Struct(payload); err != nil {
		return zero, validationAPIError(err)
	}
	body, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return zero, err
	}
	c.Mutate(path)
	c.Mutate(collection)
	return decodeData[T](body)
}

// Patch is Update with PATCH semantics, used for partial flags.
func Patch[T any](ctx context.Context, c *Client, collection, path string, payload any) (T, error) {
	var zero T
	if err := validate.Struct(payload); err != nil {
		return zero, validationAPIError(err)
	}
	body, err := c.do(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return zero, err
	}
	c.Mutate(path)
	c.Mutate(collection)
	return decodeData[T](body)
}

// Delete removes the resource and invalidates the item and collection.
func (c *Client) Delete(ctx context.Context, collection, path string) error {
	if _, err := c.do(ctx, http.MethodDelete, path, nil); err != nil {
		return err
	}
	c.Mutate(path)
	c.Mutate(collection)
	return nil
}

func validationAPIError(err error) error {
	apiErr := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "validation failed",
		Fields:  map[string][]string{},
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			name := strings.ToLower(fe.Field())
			apiErr.Fields[name] = append(apiErr.Fields[name], fe.Tag())
		}
	}
	return apiErr
}
