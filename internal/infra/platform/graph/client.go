// Package graph is a thin Facebook Graph API client shared by the Facebook and
// Instagram adapters.
package graph

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"reviewhub/config"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"

	"github.com/go-resty/resty/v2"
)

// Graph error code and subcode returned when the referenced object does not exist
// or cannot be loaded with the token's permissions.
const (
	codeInvalidParameter = 100
	subcodeMissingObject = 33
)

// Client issues Graph API calls against one API version. Calls are never retried.
type Client struct {
	http *resty.Client
}

// NewClient creates a Graph client from the Facebook platform config.
func NewClient(cfg *config.Config) *Client {
	fb := cfg.Platforms.Facebook
	baseURL := strings.TrimRight(fb.BaseURL, "/") + "/" + strings.Trim(fb.GraphVersion, "/")

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(cfg.Platforms.RequestTimeout).
			SetHeader("Accept", "application/json"),
	}
}

// APIError is the error object the Graph API returns with a non-2xx status.
type APIError struct {
	Status    int    `json:"-"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("graph api status %d: %s (code %d/%d)", e.Status, e.Message, e.Code, e.Subcode)
}

// Unwrap classifies the failure as a broken reference or a plain rejection.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound || (e.Code == codeInvalidParameter && e.Subcode == subcodeMissingObject) {
		return service.ErrBrokenLink
	}

	return service.ErrRemoteRejected
}

// Get reads path with the given fields and query parameters into out.
func (c *Client) Get(ctx context.Context, path, accessToken string, query map[string]string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetQueryParam("access_token", accessToken)

	return c.execute(req, http.MethodGet, path, out)
}

// Post sends form to path. The token travels in the form body.
func (c *Client) Post(ctx context.Context, path, accessToken string, form map[string]string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetFormData(map[string]string{"access_token": accessToken})

	return c.execute(req, http.MethodPost, path, out)
}

func (c *Client) execute(req *resty.Request, method, path string, out any) error {
	var envelope errorEnvelope
	req.SetError(&envelope)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, "/"+strings.TrimLeft(path, "/"))
	if err != nil {
		return errors.Wrapf(errors.Join(service.ErrRemoteRejected, err), "graph %s %s", method, path)
	}
	if resp.IsError() {
		envelope.Error.Status = resp.StatusCode()
		if envelope.Error.Message == "" {
			envelope.Error.Message = http.StatusText(resp.StatusCode())
		}

		return errors.Wrapf(&envelope.Error, "graph %s %s", method, path)
	}

	return nil
}
