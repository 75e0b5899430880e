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
	"sync"

	"github.com/dmitrijs2005/animalspotter/internal/client/models"
	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/logging"
	"github.com/google/uuid"
)

// DefaultBaseURL is the public sighting service.
const DefaultBaseURL = "https://lambdaanimalspotter.vapor.cloud/api"

// Doer is the transport the client sends requests through. *http.Client
// satisfies it; tests substitute a recorder.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient is the Client implementation that talks to the sighting API over HTTP.
type HTTPClient struct {
	baseURL string
	doer    Doer
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client rooted at baseURL, which must be absolute.
// A nil doer means a plain *http.Client with no timeout; a nil logger
// discards output.
func NewHTTPClient(baseURL string, doer Doer, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	if doer == nil {
		doer = &http.Client{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		doer:    doer,
		logger:  logger.With("module", "sighting_client"),
	}, nil
}

// IsAuthenticated reports whether a session token is currently held.
func (c *HTTPClient) IsAuthenticated() bool {
	return c.currentToken() != ""
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// endpoint joins path segments onto the base URL. Each segment is escaped
// so that it stays a single segment.
func (c *HTTPClient) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *HTTPClient) newRequest(ctx context.Context, method, target string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", common.ContentTypeJSON)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	return req, nil
}

// postCredentials sends creds to target and returns the status and body.
// The encoded request, which holds the password, is wiped once sent.
func (c *HTTPClient) postCredentials(ctx context.Context, target string, creds models.Credentials) (int, []byte, error) {
	payload, err := creds.MarshalJSON()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	defer common.WipeByteArray(payload)

	req, err := c.newRequest(ctx, http.MethodPost, target, payload)
	if err != nil {
		return 0, nil, err
	}

	return c.do(req)
}

// do sends req and reads the whole body. Only transport-level failures are
// reported here; status classification is left to the caller.
func (c *HTTPClient) do(req *http.Request) (int, []byte, error) {
	ctx := req.Context()
	log := c.logger.With(
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
	)

	resp, err := c.doer.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return 0, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	var body []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			log.Warn(ctx, "reading response body failed", "status", resp.StatusCode, "error", err)
			return resp.StatusCode, nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "bytes", len(body))
	return resp.StatusCode, body, nil
}

// decodeJSON rejects empty and null bodies before unmarshalling into out.
func decodeJSON(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: %w", ErrDecoding, ErrEmptyBody)
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: unexpected null", ErrDecoding)
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	return nil
}

// SignUp registers a new account. The response body is ignored and no token
// is issued.
func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) error {
	status, _, err := c.postCredentials(ctx, c.endpoint("users", "signup"), creds)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &ServerError{StatusCode: status}
	}

	return nil
}

// SignIn exchanges credentials for a session token and keeps it for later
// calls. On any failure the previously held token stays in place.
func (c *HTTPClient) SignIn(ctx context.Context, creds models.Credentials) error {
	status, body, err := c.postCredentials(ctx, c.endpoint("users", "login"), creds)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return &ServerError{StatusCode: status}
	}

	var bearer models.Bearer
	if err := decodeJSON(body, &bearer); err != nil {
		c.logger.Warn(ctx, "malformed token payload", "error", err)
		return err
	}
	if bearer.Token == "" {
		return fmt.Errorf("%w: token is empty", ErrDecoding)
	}

	c.setToken(bearer.Token)
	c.logger.Info(ctx, "signed in", "username", creds.Username)

	return nil
}

// getAuthorized performs a bearer-authenticated GET and decodes the JSON
// body into out.
func (c *HTTPClient) getAuthorized(ctx context.Context, target string, out any) error {
	token := c.currentToken()
	if token == "" {
		return ErrNotSignedIn
	}

	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	status, body, err := c.do(req)
	if err != nil {
		return err
	}

	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status < 200 || status > 299:
		return &ServerError{StatusCode: status}
	}

	return decodeJSON(body, out)
}

// ListSightingNames returns the sighting names in the order the server sent
// them.
func (c *HTTPClient) ListSightingNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.getAuthorized(ctx, c.endpoint("animals", "all"), &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FetchSightingDetail loads the record for name. The name is escaped into a
// single path segment and otherwise passed through untouched.
func (c *HTTPClient) FetchSightingDetail(ctx context.Context, name string) (*models.SightingDetail, error) {
	var detail models.SightingDetail
	if err := c.getAuthorized(ctx, c.endpoint("animals", name), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FetchImage downloads and decodes the photo at rawURL without sending the
// session token. The response status is not inspected: whatever body
// arrives must decode as an image.
func (c *HTTPClient) FetchImage(ctx context.Context, rawURL string) (*models.Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: image URL %q is not absolute", ErrEncoding, rawURL)
	}

	req, err := c.newRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		c.logger.Warn(ctx, "image endpoint returned non-success status", "status", status)
	}

	return decodeImage(body)
}
