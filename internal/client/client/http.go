package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 4 << 10
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL. tokens may be
// nil, in which case every call is anonymous.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log.With("adapter", "http"),
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.Credential, error) {
	body := map[string]string{"username": username, "password": password}

	var cred models.Credential
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login/", body, &cred); err != nil {
		return models.Credential{}, err
	}
	if cred.Empty() {
		return models.Credential{}, fmt.Errorf("login: empty access token in response")
	}
	return cred, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/register/", req, nil)
}

// Ping succeeds whenever the server answers below 500, whatever the body.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) PendingRequests(ctx context.Context) ([]models.TransferRequest, error) {
	return c.list(ctx, "/admin/pending-requests/")
}

func (c *HTTPClient) RequestDetail(ctx context.Context, requestID int) (models.TransferRequest, error) {
	var r models.TransferRequest
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admin/request/%d/", requestID), nil, &r)
	return r, err
}

func (c *HTTPClient) UpdateItemStatus(ctx context.Context, itemID int, status models.Status) error {
	body := map[string]models.Status{"status": status}
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/admin/request-item/%d/update/", itemID), body, nil)
}

func (c *HTTPClient) History(ctx context.Context) ([]models.TransferRequest, error) {
	return c.list(ctx, "/admin/history/")
}

// DeleteRequest removes a transfer request together with its items.
func (c *HTTPClient) DeleteRequest(ctx context.Context, requestID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/admin/request/%d/delete/", requestID), nil, nil)
}

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.TransferRequest, error) {
	return c.list(ctx, "/student/notifications/")
}

func (c *HTTPClient) StudentRequests(ctx context.Context) ([]models.TransferRequest, error) {
	return c.list(ctx, "/student/requests/")
}

func (c *HTTPClient) DownloadReport(ctx context.Context, requestID int, kind models.ReportKind) ([]byte, error) {
	path := fmt.Sprintf("/admin/request/%d/pdf/", requestID)
	if kind == models.ReportEvaluation {
		path = fmt.Sprintf("/admin/request/%d/evaluation-pdf/", requestID)
	}

	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.mapStatus(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", c.mapError(ctx, err))
	}
	return data, nil
}

func (c *HTTPClient) list(ctx context.Context, path string) ([]models.TransferRequest, error) {
	out := []models.TransferRequest{}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doJSON sends in as the JSON body (when non-nil) and decodes a 2xx answer
// into out (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, c.mapError(ctx, err)
	}

	c.log.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"request_id", reqID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return resp, nil
}

// mapError converts transport failures into ErrUnavailable. A cancellation
// requested by the caller is returned unchanged.
func (c *HTTPClient) mapError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))

	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	default:
		return &StatusError{Code: code, Body: msg}
	}
}
