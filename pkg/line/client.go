package line

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caterstock/caterstock-backend/pkg/config"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
)

const (
	defaultAuthBaseURL         = "https://access.line.me"
	defaultAPIBaseURL          = "https://api.line.me"
	defaultNotifyBaseURL       = "https://notify-api.line.me"
	responseBodyReadLimit int64 = 4096
)

var (
	errChannelRequired = errors.New("line channel id and secret are required")
	errTokenRequired   = errors.New("line notify token is required")
)

// Client wraps the LINE Login and LINE Notify HTTP APIs.
type Client struct {
	httpClient    *http.Client
	authBaseURL   string
	apiBaseURL    string
	notifyBaseURL string
	cfg           config.LineConfig
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAuthBaseURL overrides the authorize endpoint base URL.
func WithAuthBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.authBaseURL = trimmed
		}
	}
}

// WithAPIBaseURL overrides the API endpoint base URL.
func WithAPIBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.apiBaseURL = trimmed
		}
	}
}

// WithNotifyBaseURL overrides the Notify endpoint base URL.
func WithNotifyBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.notifyBaseURL = trimmed
		}
	}
}

// NewClient builds the LINE client. Credentials are checked per call so the
// same client serves deployments where only one of Login/Notify is configured.
func NewClient(cfg config.LineConfig, opts ...Option) *Client {
	client := &Client{
		cfg:           cfg,
		authBaseURL:   defaultAuthBaseURL,
		apiBaseURL:    defaultAPIBaseURL,
		notifyBaseURL: defaultNotifyBaseURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return client
}

// AuthorizeURL builds the LINE Login consent URL for the given state.
func (c *Client) AuthorizeURL(state string) (string, error) {
	if c.cfg.ChannelID == "" {
		return "", errChannelRequired
	}
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", c.cfg.ChannelID)
	query.Set("redirect_uri", c.cfg.RedirectURI)
	query.Set("state", state)
	query.Set("scope", "profile openid")
	return fmt.Sprintf("%s/oauth2/v2.1/authorize?%s", c.authBaseURL, query.Encode()), nil
}

// TokenResponse is the payload returned by the LINE token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	IDToken     string `json:"id_token"`
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	if c.cfg.ChannelID == "" || c.cfg.ChannelSecret == "" {
		return nil, errChannelRequired
	}
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("client_id", c.cfg.ChannelID)
	form.Set("client_secret", c.cfg.ChannelSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/oauth2/v2.1/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token TokenResponse
	if err := c.doJSON(req, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "line token exchange returned no access token")
	}
	return &token, nil
}

// Profile is the subset of the LINE profile consumed for account linking.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// GetProfile fetches the LINE profile behind an access token.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var profile Profile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	if profile.UserID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "line profile returned no user id")
	}
	return &profile, nil
}

// Notify pushes a message through LINE Notify. It satisfies the alerts
// notifier capability.
func (c *Client) Notify(ctx context.Context, message string) error {
	if !c.cfg.NotifyConfigured() {
		return errTokenRequired
	}
	form := url.Values{}
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.notifyBaseURL+"/api/notify", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building notify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.NotifyToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending notify request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("line notify returned status %d", resp.StatusCode))
	}
	return nil
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling line api: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("line api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, responseBodyReadLimit)).Decode(dest); err != nil {
		return fmt.Errorf("decoding line response: %w", err)
	}
	return nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, responseBodyReadLimit))
	_ = body.Close()
}
