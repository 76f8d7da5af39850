package reviewapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	SubmitPath       = "/api/review"
	ReportPathPrefix = "/api/report/"

	requestIDHeader = "X-Request-ID"
)

var validate = validator.New()

// Client talks to a code review service rooted at a base URL. Requests are
// never retried and carry no client-side deadline beyond the caller's ctx.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *log.Logger
	newID   func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		logger:  log.New(io.Discard, "", 0),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Submit uploads a file for review. Invalid uploads are rejected before any
// request is made.
func (c *Client) Submit(ctx context.Context, upload Upload) (SubmitResult, error) {
	if err := upload.Validate(); err != nil {
		return SubmitResult{}, err
	}

	body, contentType, err := encodeUpload(upload)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("encode upload: %w", err)
	}

	var result SubmitResult
	if err := c.do(ctx, "submit", http.MethodPost, SubmitPath, body, contentType, &result); err != nil {
		return SubmitResult{}, err
	}
	if err := validate.Struct(result); err != nil {
		return SubmitResult{}, &TransportError{Op: "submit", Err: fmt.Errorf("invalid response: %w", err)}
	}
	return result, nil
}

// Report fetches a completed report by its identifier.
func (c *Client) Report(ctx context.Context, reportID string) (ReportData, error) {
	var body reportBody
	path := ReportPathPrefix + url.PathEscape(reportID)
	if err := c.do(ctx, "report", http.MethodGet, path, nil, "", &body); err != nil {
		return ReportData{}, err
	}
	if err := validate.Struct(body); err != nil {
		return ReportData{}, &TransportError{Op: "report", Err: fmt.Errorf("invalid response: %w", err)}
	}
	data := body.ReportData
	data.Review = *body.Review
	return data, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	endpoint := strings.TrimRight(c.baseURL.String(), "/") + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	requestID := c.newID()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("%s %s request_id=%s error=%v", method, path, requestID, err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("%s %s request_id=%s status=%d read_error=%v", method, path, requestID, resp.StatusCode, err)
		return &TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}
	c.logger.Printf("%s %s request_id=%s status=%d bytes=%d", method, path, requestID, resp.StatusCode, len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return &APIError{Op: op, Status: resp.StatusCode, Message: strings.TrimSpace(eb.Error)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("parsing response: %w", err)}
	}
	return nil
}

func encodeUpload(upload Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(FileField, upload.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
