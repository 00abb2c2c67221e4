package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/common"
	"github.com/dmitrijs2005/emergency15/internal/logging"
	"github.com/google/uuid"
)

// Endpoint paths relative to the base URL.
const (
	EndpointLogin          = "login"
	EndpointRegister       = "register"
	EndpointVerifyUser     = "active_user"
	EndpointForgetPassword = "forget-password"
	EndpointResetPassword  = "reset-password"
	EndpointUpdateUser     = "update_user"
	EndpointDeleteUser     = "delete_user"
	EndpointSaveLeads      = "save_leads"
	EndpointSaveLeadsMedia = "save_leads_media"
	EndpointUserSOS        = "user_sos"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultUploadTimeout = 200 * time.Second
)

// Client is the backend contract used by the services.
type Client interface {
	Login(ctx context.Context, in models.LoginInput) (models.LoginData, error)
	Register(ctx context.Context, in models.RegisterInput) (models.RegisterData, error)
	VerifyRegistration(ctx context.Context, in models.VerificationInput) error
	ForgetPassword(ctx context.Context, in models.ForgetPasswordInput) (models.ForgetPasswordData, error)
	ResetPassword(ctx context.Context, in models.ResetPasswordInput) error
	UpdateUser(ctx context.Context, in models.ProfileInput) error
	DeleteUser(ctx context.Context) error
	SaveLead(ctx context.Context, in models.LeadInput) (int64, error)
	SaveLeadMedia(ctx context.Context, ev models.Evidence) error
	UserSOS(ctx context.Context) ([]models.Case, error)
}

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Options struct {
	Timeout       time.Duration
	UploadTimeout time.Duration
	HTTPClient    *http.Client
	Logger        logging.Logger
}

type HTTPClient struct {
	base          *url.URL
	http          *http.Client
	tokens        TokenSource
	timeout       time.Duration
	uploadTimeout time.Duration
	log           logging.Logger
	newRequestID  func() string
}

var _ Client = (*HTTPClient)(nil)

// New builds a client for baseURL. A trailing slash is added when missing so
// endpoint paths resolve under it.
func New(baseURL string, tokens TokenSource, opts Options) (*HTTPClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		base:          u,
		http:          opts.HTTPClient,
		tokens:        tokens,
		timeout:       opts.Timeout,
		uploadTimeout: opts.UploadTimeout,
		log:           opts.Logger,
		newRequestID:  uuid.NewString,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.uploadTimeout <= 0 {
		c.uploadTimeout = DefaultUploadTimeout
	}
	if c.log == nil {
		c.log = logging.NewDiscard()
	}
	return c, nil
}

func (c *HTTPClient) endpointURL(endpoint string) string {
	return c.base.ResolveReference(&url.URL{Path: endpoint}).String()
}

// newRequest builds an authorized POST request. The token is read for
// every request; an absent token still sends "Bearer ".
func (c *HTTPClient) newRequest(ctx context.Context, endpoint string, body io.Reader, contentType string) (*http.Request, string, error) {
	token := ""
	if c.tokens != nil {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "could not read bearer token", "error", err)
		}
		token = t
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), body)
	if err != nil {
		return nil, "", err
	}

	reqID := c.newRequestID()
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, reqID, nil
}

// call POSTs in as JSON (no body when in is nil) and decodes the envelope
// data into out (skipped when out is nil).
func (c *HTTPClient) call(ctx context.Context, endpoint string, in any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, reqID, err := c.newRequest(ctx, endpoint, body, contentType)
	if err != nil {
		return err
	}
	return c.do(req, endpoint, reqID, out)
}

func (c *HTTPClient) do(req *http.Request, endpoint, reqID string, out any) error {
	ctx := req.Context()
	log := c.log.With("endpoint", endpoint, "request_id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s returned %d", ErrUnavailable, endpoint, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapTransportError(ctx, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &Error{Endpoint: endpoint, Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	if env.Error || resp.StatusCode >= http.StatusBadRequest {
		code := env.Code
		if code == 0 {
			code = resp.StatusCode
		}
		msg := env.errorMessage()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Endpoint: endpoint, Code: code, Message: msg}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", endpoint, err)
	}
	return nil
}

// mapTransportError keeps caller cancellation visible and turns every other
// transport failure into ErrUnavailable.
func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) (models.LoginData, error) {
	var out models.LoginData
	err := c.call(ctx, EndpointLogin, in, &out)
	return out, err
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) (models.RegisterData, error) {
	var out models.RegisterData
	err := c.call(ctx, EndpointRegister, in, &out)
	return out, err
}

func (c *HTTPClient) VerifyRegistration(ctx context.Context, in models.VerificationInput) error {
	return c.call(ctx, EndpointVerifyUser, in, nil)
}

func (c *HTTPClient) ForgetPassword(ctx context.Context, in models.ForgetPasswordInput) (models.ForgetPasswordData, error) {
	var out models.ForgetPasswordData
	err := c.call(ctx, EndpointForgetPassword, in, &out)
	return out, err
}

func (c *HTTPClient) ResetPassword(ctx context.Context, in models.ResetPasswordInput) error {
	return c.call(ctx, EndpointResetPassword, in, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, in models.ProfileInput) error {
	return c.call(ctx, EndpointUpdateUser, in, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context) error {
	return c.call(ctx, EndpointDeleteUser, nil, nil)
}

// SaveLead reports an incident and returns the lead id assigned to it.
func (c *HTTPClient) SaveLead(ctx context.Context, in models.LeadInput) (int64, error) {
	var raw json.RawMessage
	if err := c.call(ctx, EndpointSaveLeads, in, &raw); err != nil {
		return 0, err
	}
	id, err := decodeID(raw)
	if err != nil {
		return 0, fmt.Errorf("decode %s lead id: %w", EndpointSaveLeads, err)
	}
	return id, nil
}

func (c *HTTPClient) UserSOS(ctx context.Context) ([]models.Case, error) {
	var out []models.Case
	if err := c.call(ctx, EndpointUserSOS, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeID accepts 12, "12" or {"lead_id": 12}.
func decodeID(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.Int64()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseInt(s, 10, 64)
	}
	var obj struct {
		LeadID json.Number `json:"lead_id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, err
	}
	if obj.LeadID == "" {
		return 0, errors.New("missing lead_id")
	}
	return obj.LeadID.Int64()
}
