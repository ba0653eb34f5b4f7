package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/dayadevraha/devraha/internal/client/models"
	"github.com/dayadevraha/devraha/internal/logging"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:6000/api/v1"

const (
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 1 << 20
)

// envelope is the API's answer wrapper. Error answers use either message or
// error for the human-readable text.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. A cookie jar is added
// when it has none.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

// NewHTTPClient builds a client for baseURL (DefaultBaseURL when empty).
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) endpoint(kind models.Kind, path string) string {
	return c.baseURL + "/" + kind.String() + "/" + path
}

// do performs one request. in is JSON-encoded when non-nil; out, when
// non-nil, receives the decoded envelope of a 2xx answer.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw)
		c.logger.Debug(ctx, "api request failed",
			"method", method, "url", endpoint, "status", resp.StatusCode, "request_id", requestID)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	var env envelope[json.RawMessage]
	if json.Unmarshal(raw, &env) == nil {
		switch {
		case env.Message != "":
			apiErr.Message = env.Message
		case env.Error != "":
			apiErr.Message = env.Error
		}
	}
	return apiErr
}

func (c *HTTPClient) subject(ctx context.Context, method, endpoint string, in any) (*models.Subject, error) {
	var env envelope[*models.Subject]
	if err := c.do(ctx, method, endpoint, in, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, errors.New("response carries no subject")
	}
	return env.Data, nil
}

func (c *HTTPClient) message(ctx context.Context, method, endpoint string, in any) (string, error) {
	var env envelope[json.RawMessage]
	if err := c.do(ctx, method, endpoint, in, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) verification(ctx context.Context, endpoint string) (bool, error) {
	var env envelope[models.Verification]
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return false, err
	}
	return env.Data.Verified, nil
}

func (c *HTTPClient) Register(ctx context.Context, kind models.Kind, req models.RegisterRequest) (*models.Subject, error) {
	return c.subject(ctx, http.MethodPost, c.endpoint(kind, "register"), req)
}

func (c *HTTPClient) Login(ctx context.Context, kind models.Kind, req models.LoginRequest) (*models.LoginResponse, error) {
	var env envelope[models.LoginResponse]
	if err := c.do(ctx, http.MethodPost, c.endpoint(kind, "login"), req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, kind models.Kind, req models.VerifyOTPRequest) (*models.Subject, error) {
	return c.subject(ctx, http.MethodPost, c.endpoint(kind, "verify-otp"), req)
}

func (c *HTTPClient) Logout(ctx context.Context, kind models.Kind) error {
	return c.do(ctx, http.MethodPost, c.endpoint(kind, "logout"), struct{}{}, nil)
}

func (c *HTTPClient) ValidateToken(ctx context.Context, kind models.Kind) (*models.Subject, error) {
	return c.subject(ctx, http.MethodGet, c.endpoint(kind, "validate-token"), nil)
}

func (c *HTTPClient) Profile(ctx context.Context, kind models.Kind) (*models.Subject, error) {
	return c.subject(ctx, http.MethodGet, c.endpoint(kind, "profile"), nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, kind models.Kind, req models.ProfileUpdate) (*models.Subject, error) {
	var env envelope[*models.Subject]
	if err := c.do(ctx, http.MethodPut, c.endpoint(kind, "update-profile"), req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, kind models.Kind) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(kind, "delete-account"), nil, nil)
}

func (c *HTTPClient) EnableTwoFactor(ctx context.Context, kind models.Kind) error {
	return c.do(ctx, http.MethodPost, c.endpoint(kind, "enable-two-factor"), struct{}{}, nil)
}

func (c *HTTPClient) DisableTwoFactor(ctx context.Context, kind models.Kind) error {
	return c.do(ctx, http.MethodPost, c.endpoint(kind, "disable-two-factor"), struct{}{}, nil)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, kind models.Kind, token string) (bool, error) {
	endpoint := c.endpoint(kind, "verify-email") + "?" + url.Values{"token": {token}}.Encode()
	return c.verification(ctx, endpoint)
}

func (c *HTTPClient) VerificationStatus(ctx context.Context, kind models.Kind) (bool, error) {
	return c.verification(ctx, c.endpoint(kind, "verification-status"))
}

func (c *HTTPClient) ResendVerification(ctx context.Context, kind models.Kind, email string) (string, error) {
	return c.message(ctx, http.MethodPost, c.endpoint(kind, "resend-verification"), models.EmailRequest{Email: email})
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, kind models.Kind, email string) (string, error) {
	return c.message(ctx, http.MethodPost, c.endpoint(kind, "forgot-password"), models.EmailRequest{Email: email})
}

func (c *HTTPClient) ResetPassword(ctx context.Context, kind models.Kind, req models.ResetPasswordRequest) (string, error) {
	return c.message(ctx, http.MethodPost, c.endpoint(kind, "reset-password"), req)
}

var _ Client = (*HTTPClient)(nil)
