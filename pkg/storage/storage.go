package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrNotConfigured = errors.New("storage: not configured")

type Config struct {
	URL        string
	ServiceKey string
	Bucket     string
}

// Remover deletes objects by name.
type Remover interface {
	Remove(ctx context.Context, names []string) error
}

// Uploader stores an object under name, replacing any previous version.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) error
	PublicURL(name string) string
}

type Client struct {
	http   *resty.Client
	base   string
	bucket string
}

var (
	_ Remover  = (*Client)(nil)
	_ Uploader = (*Client)(nil)
)

func NewClient(cfg *Config) *Client {
	base := strings.TrimRight(cfg.URL, "/")
	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(30*time.Second).
		SetHeader("apikey", cfg.ServiceKey).
		SetAuthToken(cfg.ServiceKey)

	return &Client{http: rc, base: base, bucket: cfg.Bucket}
}

func (c *Client) configured() bool {
	return c.base != "" && c.bucket != ""
}

func (c *Client) Upload(ctx context.Context, name, contentType string, body io.Reader) error {
	if !c.configured() {
		return ErrNotConfigured
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(body).
		Post(c.objectPath(name))
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	if res.IsError() {
		return fmt.Errorf("upload %s: %s: %s", name, res.Status(), res.String())
	}
	return nil
}

// Remove deletes every named object in one request. Unknown names are ignored
// by the storage API.
func (c *Client) Remove(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if !c.configured() {
		return ErrNotConfigured
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string][]string{"prefixes": names}).
		Delete("/storage/v1/object/" + url.PathEscape(c.bucket))
	if err != nil {
		return fmt.Errorf("remove objects: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("remove objects: %s: %s", res.Status(), res.String())
	}
	return nil
}

func (c *Client) PublicURL(name string) string {
	return c.base + "/storage/v1/object/public/" + url.PathEscape(c.bucket) + "/" + escapeName(name)
}

func (c *Client) objectPath(name string) string {
	return "/storage/v1/object/" + url.PathEscape(c.bucket) + "/" + escapeName(name)
}

// escapeName keeps "/" separators so nested object names map to folders.
func escapeName(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
